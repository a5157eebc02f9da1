//go:build unit || e2e

package builder

import "github.com/jaswdr/faker"

var fake = faker.New()

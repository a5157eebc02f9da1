// Command signage-display runs one unattended screen against a signage
// server, or pushes a menu reorder the way the editor does.
package main

func main() {
	Execute()
}

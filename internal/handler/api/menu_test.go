//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"signage-sync/internal/domain/menu"
	"signage-sync/internal/handler/api"
	"signage-sync/internal/usecase/commands"
	"signage-sync/tests/common/builder"
	"signage-sync/tests/common/httptest"
	"signage-sync/tests/common/testutil"
	commandsmock "signage-sync/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMenuCommands
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMenuCommands(s.mockCtrl)

	h := api.NewMenuHandler(s.mockCommands)
	s.router.PATCH("/api/menu-items/:id/sort-order", fakeAuth, h.UpdateSortOrder)
	s.router.PATCH("/api/menu-items/:id", fakeAuth, h.UpdateMenuItem)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestUpdateSortOrder() {
	id := uuid.New()
	url := "/api/menu-items/" + id.String() + "/sort-order"

	s.Run("success: zero is a valid position", func() {
		s.mockCommands.EXPECT().UpdateSortOrder(gomock.Any(), id, 0).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"sort_order": 0}, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on missing or negative sort_order", func() {
		for _, body := range []map[string]any{{}, {"sort_order": -1}, {"sort_order": "first"}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 404 for unknown item", func() {
		s.mockCommands.EXPECT().UpdateSortOrder(gomock.Any(), id, 4).Return(commands.ErrMenuItemNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"sort_order": 4}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Menu item not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"sort_order": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *MenuHandlerTestSuite) TestUpdateMenuItem() {
	b := builder.NewMenuItemBuilder()
	url := "/api/menu-items/" + b.ID.String()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: partial body only sets given fields", func() {
		s.mockCommands.EXPECT().UpdateMenuItem(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.UpdateMenuItemRequest) error {
				s.Require().NotNil(req.PriceCents)
				s.Equal(int64(990), *req.PriceCents)
				s.Nil(req.Name)
				s.Nil(req.Tags)
				return nil
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price_cents": 990}, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []testCase{
			{name: "negative price", mutate: testutil.Set("price_cents", -1), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Set("name", strings.Repeat("n", 101)), expectCode: http.StatusBadRequest},
			{name: "too many tags", mutate: testutil.Set("tags", make([]string, 11)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.Body(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: domain validation carries its reason", func() {
		s.mockCommands.EXPECT().UpdateMenuItem(gomock.Any(), b.ID, gomock.Any()).Return(menu.ErrDescriptionTooLong)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), "menu item description is too long")
	})
}

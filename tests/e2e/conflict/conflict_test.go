//go:build e2e

package conflict_test

import (
	"net/http"
	"testing"
	"time"

	"dealdesk/internal/domain/user"
	"dealdesk/internal/handler/dto/request"
	"dealdesk/internal/handler/dto/response"
	"dealdesk/tests/common/authtest"
	"dealdesk/tests/common/dbtest"
	"dealdesk/tests/common/httptest"
	"dealdesk/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	dealsURL     = "/api/deals"
	brandsURL    = "/api/brands"
	conflictsURL = "/api/conflicts"
)

type ConflictSuite struct {
	e2e.SharedSuite
}

func (s *ConflictSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestConflictSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ConflictSuite))
}

func (s *ConflictSuite) createBrand(t *testing.T, token, name, category string) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, brandsURL,
		request.CreateBrandRequest{Name: name, Category: category}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created["brand_id"])
	return created["brand_id"]
}

func (s *ConflictSuite) createDeal(t *testing.T, token string, req request.CreateDealRequest) response.CreateDealResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, req, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateDealResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotNil(t, created.Deal)
	return created
}

func exclusiveDealRequest(brandID, title, category string, start, end time.Time) request.CreateDealRequest {
	req := plainDealRequest(brandID, title)
	req.Exclusivity = &request.ExclusivityClauseRequest{
		Scope:     "CATEGORY",
		Category:  category,
		StartDate: start,
		EndDate:   end,
	}
	return req
}

func plainDealRequest(brandID, title string) request.CreateDealRequest {
	return request.CreateDealRequest{
		BrandID:     uuid.MustParse(brandID),
		Title:       title,
		AmountCents: 100_000,
		Currency:    "USD",
	}
}

func (s *ConflictSuite) TestConflictLifecycle() {
	now := time.Now().UTC().Truncate(time.Hour)
	windowStart := now.AddDate(0, 0, -7)
	windowEnd := now.AddDate(0, 1, 0)

	s.Run("Creating an overlapping deal surfaces a BLOCK conflict", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", string(user.RoleCreator))

		acmeID := s.createBrand(t, token, "Acme Fitness", "fitness")
		pulseID := s.createBrand(t, token, "Pulse Athletics", "fitness")

		first := s.createDeal(t, token, exclusiveDealRequest(acmeID, "Acme spring push", "fitness", windowStart, windowEnd))
		require.Zero(t, first.Reconcile.ConflictsDetected)

		second := s.createDeal(t, token, plainDealRequest(pulseID, "Pulse launch"))
		require.Equal(t, 1, second.Reconcile.ConflictsDetected)

		// List shows the active BLOCK conflict.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var items []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, "EXCLUSIVITY_OVERLAP", items[0].Type)
		require.Equal(t, "BLOCK", items[0].Severity)
		require.Equal(t, second.Deal.ID, items[0].TargetDealID)
		require.Equal(t, "Acme spring push", items[0].ConflictingRuleDealTitle)
		require.Equal(t, "Acme Fitness", items[0].ConflictingRuleBrandName)
		require.NotEmpty(t, items[0].SuggestedResolutions)
		require.NotNil(t, items[0].Overlap.Start)

		// Summary counts it.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL+"/summary", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var summary response.ConflictSummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &summary))
		require.EqualValues(t, 1, summary.ActiveCount)
		require.EqualValues(t, 1, summary.BlockCount)
		require.EqualValues(t, 0, summary.WarnCount)

		// Detail carries overlap metadata and suggestions.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL+"/"+items[0].ID, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var detail response.ConflictResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.NotEmpty(t, detail.SuggestedResolutions)
		require.NotNil(t, detail.Overlap.Start)
	})

	s.Run("Manual resolution is terminal", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", string(user.RoleCreator))

		acmeID := s.createBrand(t, token, "Acme Fitness", "fitness")
		pulseID := s.createBrand(t, token, "Pulse Athletics", "fitness")
		s.createDeal(t, token, exclusiveDealRequest(acmeID, "Acme spring push", "fitness", windowStart, windowEnd))
		s.createDeal(t, token, plainDealRequest(pulseID, "Pulse launch"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, token)
		var items []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		conflictID := items[0].ID

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL+"/"+conflictID+"/resolve", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resolved response.ConflictResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Equal(t, "RESOLVED", resolved.Status)

		// Second resolve conflicts.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL+"/"+conflictID+"/resolve", nil, token)
		require.Equal(t, http.StatusConflict, w.Code)

		// Active listing is empty again.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, token)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Empty(t, items)
	})

	s.Run("Clearing the clause auto-resolves and keeps history", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", string(user.RoleCreator))

		acmeID := s.createBrand(t, token, "Acme Fitness", "fitness")
		pulseID := s.createBrand(t, token, "Pulse Athletics", "fitness")
		exclusive := s.createDeal(t, token, exclusiveDealRequest(acmeID, "Acme spring push", "fitness", windowStart, windowEnd))
		s.createDeal(t, token, plainDealRequest(pulseID, "Pulse launch"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, dealsURL+"/"+exclusive.Deal.ID,
			request.UpdateDealRequest{ClearExclusivity: true}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated response.UpdateDealResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, 1, updated.Reconcile.ConflictsAutoResolved)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL+"?status=resolved", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var items []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, "AUTO_RESOLVED", items[0].Status)
		require.True(t, items[0].AutoResolved)
	})

	s.Run("Cancelling the conflicting deal auto-resolves", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", string(user.RoleCreator))

		acmeID := s.createBrand(t, token, "Acme Fitness", "fitness")
		pulseID := s.createBrand(t, token, "Pulse Athletics", "fitness")
		s.createDeal(t, token, exclusiveDealRequest(acmeID, "Acme spring push", "fitness", windowStart, windowEnd))
		rival := s.createDeal(t, token, plainDealRequest(pulseID, "Pulse launch"))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, dealsURL+"/"+rival.Deal.ID, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reconcile response.ReconcileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reconcile))
		require.Equal(t, 1, reconcile.ConflictsAutoResolved)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, token)
		var items []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Empty(t, items)
	})

	s.Run("Same-day deliverables across deals warn", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", string(user.RoleCreator))

		teaID := s.createBrand(t, token, "Quiet Tea Co", "beverages")
		coffeeID := s.createBrand(t, token, "Morning Roast", "coffee")
		tea := s.createDeal(t, token, plainDealRequest(teaID, "Tea launch"))
		coffee := s.createDeal(t, token, plainDealRequest(coffeeID, "Coffee launch"))

		launch := now.AddDate(0, 0, 3)
		later := launch.Add(5 * time.Hour)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL+"/"+tea.Deal.ID+"/deliverables",
			request.CreateDeliverableRequest{Title: "Tea reel", ScheduledAt: &launch}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL+"/"+coffee.Deal.ID+"/deliverables",
			request.CreateDeliverableRequest{Title: "Coffee reel", ScheduledAt: &later}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, token)
		var items []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, "SCHEDULING_COLLISION", items[0].Type)
		require.Equal(t, "WARN", items[0].Severity)
	})

	s.Run("Conflicts are invisible to other users", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", string(user.RoleCreator))

		acmeID := s.createBrand(t, token, "Acme Fitness", "fitness")
		pulseID := s.createBrand(t, token, "Pulse Athletics", "fitness")
		s.createDeal(t, token, exclusiveDealRequest(acmeID, "Acme spring push", "fitness", windowStart, windowEnd))
		s.createDeal(t, token, plainDealRequest(pulseID, "Pulse launch"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, token)
		var items []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCreator))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL, nil, otherToken)
		require.Equal(t, http.StatusOK, w.Code)
		var otherItems []*response.ConflictListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &otherItems))
		require.Empty(t, otherItems)

		// Detail access is ownership-checked too.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conflictsURL+"/"+items[0].ID, nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *ConflictSuite) TestAdminRecompute() {
	now := time.Now().UTC().Truncate(time.Hour)

	s.Run("Admin triggers a full pass for a creator", func() {
		t := s.T()
		creatorID := dbtest.CreateTestUser(t, s.DB, "creator@example.com", string(user.RoleCreator))
		creatorToken := authtest.LoginUser(t, s.Router, "creator@example.com", "password123")

		acmeID := s.createBrand(t, creatorToken, "Acme Fitness", "fitness")
		pulseID := s.createBrand(t, creatorToken, "Pulse Athletics", "fitness")
		s.createDeal(t, creatorToken, exclusiveDealRequest(acmeID, "Acme spring push", "fitness", now.AddDate(0, 0, -7), now.AddDate(0, 1, 0)))
		second := s.createDeal(t, creatorToken, plainDealRequest(pulseID, "Pulse launch"))
		require.Equal(t, 1, second.Reconcile.ConflictsDetected)

		// The backfill route is admin-gated.
		url := "/api/admin/users/" + creatorID.String() + "/reconcile"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, creatorToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats response.ReconcileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))
		require.Zero(t, stats.ConflictsDetected)
		require.Equal(t, 1, stats.ConflictsRefreshed)
	})
}


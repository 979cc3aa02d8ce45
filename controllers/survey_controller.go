// controllers/survey_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// SurveyController serves the survey pages: the admin overview and the
// collaborator take/respond flow.
type SurveyController struct {
	stores *store.Manager
	forms  *forms.Validator
}

func NewSurveyController(stores *store.Manager, validator *forms.Validator) *SurveyController {
	return &SurveyController{stores: stores, forms: validator}
}

// AdminList renders every survey for the admin overview.
func (sc *SurveyController) AdminList(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	surveys := sc.stores.For(session.UserID).Surveys

	if err := surveys.ListAll(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("survey list failed: %v", err)
	}
	return sc.renderList(c, "/admin/surveys")
}

// OpenList renders the unassigned surveys a collaborator can take.
func (sc *SurveyController) OpenList(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	surveys := sc.stores.For(session.UserID).Surveys

	if err := surveys.ListOpen(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("open survey list failed: %v", err)
	}
	return sc.renderList(c, "/collaborator/surveys")
}

// MineList renders the surveys assigned to the calling collaborator.
func (sc *SurveyController) MineList(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	surveys := sc.stores.For(session.UserID).Surveys

	if err := surveys.ListMine(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("my survey list failed: %v", err)
	}
	return sc.renderList(c, "/collaborator/surveys/mine")
}

// Detail renders one survey with its action form.
func (sc *SurveyController) Detail(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	for _, s := range sc.stores.For(session.UserID).Surveys.State().Items {
		if s.ID == id {
			data := newPageData(c)
			data["Survey"] = s
			data["Base"] = sc.basePath(session)
			return c.Render(http.StatusOK, "survey_detail", data)
		}
	}
	return redirectWithError(c, sc.basePath(session)+"/surveys", &models.APIError{Code: 0, Message: "Không tìm thấy khảo sát"})
}

// Take assigns an Open survey to the calling collaborator.
func (sc *SurveyController) Take(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	if survey := sc.findLoaded(session, id); survey != nil && !survey.CanTake() {
		return redirectWithError(c, "/collaborator/surveys", &models.APIError{
			Code: 0, Message: "Khảo sát không ở trạng thái Open",
		})
	}

	if _, err := sc.stores.For(session.UserID).Surveys.Take(c.Request().Context(), session.Token, id); err != nil {
		return redirectWithError(c, "/collaborator/surveys", err)
	}
	return redirectWithToast(c, "/collaborator/surveys/"+id, "Đã nhận khảo sát")
}

// Respond submits the answer and completes the survey.
func (sc *SurveyController) Respond(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	var req models.SurveyResponseRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/collaborator/surveys/"+id, err)
	}

	if errs := sc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Base"] = "/collaborator"
		if survey := sc.findLoaded(session, id); survey != nil {
			data["Survey"] = *survey
		}
		return c.Render(http.StatusOK, "survey_detail", data)
	}

	if survey := sc.findLoaded(session, id); survey != nil && !survey.CanRespond() {
		return redirectWithError(c, "/collaborator/surveys/"+id, &models.APIError{
			Code: 0, Message: "Khảo sát không ở trạng thái In Progress",
		})
	}

	if _, err := sc.stores.For(session.UserID).Surveys.Respond(c.Request().Context(), session.Token, id, req); err != nil {
		return redirectWithError(c, "/collaborator/surveys/"+id, err)
	}
	return redirectWithToast(c, "/collaborator/surveys/"+id, "Đã gửi câu trả lời")
}

func (sc *SurveyController) renderList(c echo.Context, base string) error {
	session := middleware.SessionFromContext(c)
	state := sc.stores.For(session.UserID).Surveys.State()

	items := state.Items
	if status := c.QueryParam("status"); status != "" {
		filtered := make([]models.Survey, 0, len(items))
		for _, s := range items {
			if s.Status == status {
				filtered = append(filtered, s)
			}
		}
		items = filtered
	}

	data := newPageData(c)
	data["Surveys"] = items
	data["Status"] = c.QueryParam("status")
	data["Statuses"] = []string{models.SurveyOpen, models.SurveyInProgress, models.SurveyComplete}
	data["Base"] = sc.basePath(session)
	data["ListPath"] = base
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "surveys_list", data)
}

func (sc *SurveyController) findLoaded(session *middleware.Session, id string) *models.Survey {
	for _, s := range sc.stores.For(session.UserID).Surveys.State().Items {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

func (sc *SurveyController) basePath(session *middleware.Session) string {
	if session.Role == models.RoleCollaborator {
		return "/collaborator"
	}
	return "/admin"
}

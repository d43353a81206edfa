package profiles

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/househarmony/internal/domain"
	"github.com/nfrund/househarmony/internal/middleware"
	"github.com/nfrund/househarmony/internal/rendering"
	"github.com/nfrund/househarmony/internal/view"
)

const (
	sessionName      = "profiles-session"
	sessionKeyViewID = "view_id"
)

// profileForm is the body of the create and edit forms.
type profileForm struct {
	Name string `form:"name"`
	Icon string `form:"icon"`
}

// Handler serves the profile management screen. Every state change is a
// POST that redirects back to the page (post/redirect/get), with the
// resulting notifications carried as flash messages.
type Handler struct {
	store    *ViewStore
	renderer rendering.Renderer
}

// NewHandler creates a new Handler.
func NewHandler(store *ViewStore, renderer rendering.Renderer) *Handler {
	return &Handler{
		store:    store,
		renderer: renderer,
	}
}

// Routes registers the handler on g.
func (h *Handler) Routes(g *echo.Group, mutation echo.MiddlewareFunc) {
	g.GET("", h.Index)
	g.POST("", h.Create, mutation)
	g.POST("/refresh", h.Refresh)
	g.POST("/edit/cancel", h.CancelEdit)
	g.POST("/delete/cancel", h.CancelDelete)
	g.POST("/:id", h.Save, mutation)
	g.POST("/:id/edit", h.Edit)
	g.POST("/:id/delete", h.RequestDelete)
	g.POST("/:id/delete/confirm", h.ConfirmDelete, mutation)
}

// Index renders the page. The first visit of a session mounts the view,
// which loads the list from the service.
func (h *Handler) Index(c echo.Context) error {
	vs, err := h.acquire(c)
	if err != nil {
		return err
	}
	state := vs.View.State()
	h.flush(c, vs.Inbox)
	vs.Release()

	page := view.Base("Profiles", view.GetFlashData(c), Page(state))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// Refresh reloads the list from the service.
func (h *Handler) Refresh(c echo.Context) error {
	return h.act(c, "refresh", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		return v.Mount(ctx)
	})
}

// Create submits the create form.
func (h *Handler) Create(c echo.Context) error {
	var form profileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	return h.act(c, "create", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		v.SetDraftName(form.Name)
		if form.Icon != "" {
			if err := v.SelectDraftIcon(form.Icon); err != nil {
				inbox.Notify(Notification{Level: LevelError, Message: MsgInvalidIcon})
				return err
			}
		}
		return v.SubmitCreate(ctx)
	})
}

// Edit puts a profile in edit mode.
func (h *Handler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return h.act(c, "edit", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		return v.BeginEdit(id)
	})
}

// CancelEdit leaves edit mode.
func (h *Handler) CancelEdit(c echo.Context) error {
	return h.act(c, "cancel_edit", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		v.CancelEdit()
		return nil
	})
}

// Save submits the edit form of a profile.
func (h *Handler) Save(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var form profileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	return h.act(c, "update", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		// A form for another profile than the one in edit mode replaces it.
		if e := v.Editing(); e == nil || e.ID != id {
			if err := v.BeginEdit(id); err != nil {
				return err
			}
		}
		if err := v.SetEditName(form.Name); err != nil {
			return err
		}
		if form.Icon != "" {
			if err := v.SelectEditIcon(form.Icon); err != nil {
				inbox.Notify(Notification{Level: LevelError, Message: MsgInvalidIcon})
				return err
			}
		}
		return v.SaveEdit(ctx)
	})
}

// RequestDelete opens the confirmation dialog for a profile.
func (h *Handler) RequestDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return h.act(c, "request_delete", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		return v.RequestDelete(id)
	})
}

// CancelDelete closes the confirmation dialog.
func (h *Handler) CancelDelete(c echo.Context) error {
	return h.act(c, "cancel_delete", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		v.CancelDelete()
		return nil
	})
}

// ConfirmDelete deletes the profile awaiting confirmation. The id in the URL
// must match the pending one.
func (h *Handler) ConfirmDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return h.act(c, "delete", func(ctx context.Context, v *ListView, inbox *Inbox) error {
		pending := v.State().PendingDelete
		if pending == nil || pending.ID != id {
			v.CancelDelete()
			return ErrNoPendingDelete
		}
		return v.ConfirmDelete(ctx)
	})
}

type action func(ctx context.Context, v *ListView, inbox *Inbox) error

// act runs fn against the caller's view and redirects back to the page.
// Failures have already been turned into notifications by the view, so
// they are only logged here.
func (h *Handler) act(c echo.Context, name string, fn action) error {
	vs, err := h.acquire(c)
	if err != nil {
		return err
	}
	defer vs.Release()

	ctx := c.Request().Context()
	if err := fn(ctx, vs.View, vs.Inbox); err != nil {
		level := middleware.FromContext(ctx).Warn
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, ErrNotEditing) || errors.Is(err, ErrNoPendingDelete) {
			level = middleware.FromContext(ctx).Debug
		}
		level("Profile action did not complete", "action", name, "error", err)
	}
	h.flush(c, vs.Inbox)
	return c.Redirect(http.StatusSeeOther, BasePath)
}

// acquire returns the locked view of the caller's session, mounting it when
// the session is new.
func (h *Handler) acquire(c echo.Context) (*ViewSession, error) {
	id, err := viewID(c)
	if err != nil {
		return nil, err
	}
	vs, created := h.store.Acquire(id)
	if created {
		ctx := c.Request().Context()
		if err := vs.View.Mount(ctx); err != nil {
			middleware.FromContext(ctx).Warn("Failed to load profiles", "view_id", id, "error", err)
		}
	}
	return vs, nil
}

// flush moves queued notifications into flash messages.
func (h *Handler) flush(c echo.Context, inbox *Inbox) {
	for _, n := range inbox.Drain() {
		switch n.Level {
		case LevelSuccess:
			view.SetFlashSuccess(c, n.Message)
		default:
			view.SetFlashError(c, n.Message)
		}
	}
}

// viewID returns the id of the caller's view, issuing one on first visit.
func viewID(c echo.Context) (string, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return "", err
	}
	if id, ok := sess.Values[sessionKeyViewID].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values[sessionKeyViewID] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}
	return id, nil
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid profile id")
	}
	return id, nil
}

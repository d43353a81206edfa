package view

import (
	"encoding/gob"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKey         = "toasts"
)

// Flash levels.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is one toast message.
type Flash struct {
	Level string
	Text  string
}

func init() {
	// Flashes are gob-encoded into the cookie.
	gob.Register(Flash{})
}

// FlashData holds the toast messages queued for the next render, in the
// order they were raised.
type FlashData struct {
	Messages []Flash
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Messages) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, level, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.Warn("Flash session unavailable", "error", err)
		return
	}
	sess.AddFlash(Flash{Level: level, Text: message}, flashKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save flash session", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, FlashSuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, FlashError, message)
}

// GetFlashData retrieves and clears the pending flash messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns, so the session has to be saved.
	for _, v := range sess.Flashes(flashKey) {
		if f, ok := v.(Flash); ok {
			data.Messages = append(data.Messages, f)
		}
	}
	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

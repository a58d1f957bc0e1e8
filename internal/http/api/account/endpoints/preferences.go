package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/db"
	"github.com/hymuslim/hymuslim-server/internal/http/api"
	"github.com/hymuslim/hymuslim-server/internal/http/api/account/packets"
	"github.com/hymuslim/hymuslim-server/internal/model"
	"github.com/hymuslim/hymuslim-server/internal/scheduler"
)

type PreferencesController struct {
	store  db.Store
	alerts *scheduler.Scheduler
}

func NewPreferencesController(store db.Store, alerts *scheduler.Scheduler) *PreferencesController {
	return &PreferencesController{store: store, alerts: alerts}
}

// RegisterPreferenceRoutes mounts the per-account settings endpoints.
func RegisterPreferenceRoutes(r gin.IRoutes, store db.Store, alerts *scheduler.Scheduler) {
	ctl := NewPreferencesController(store, alerts)
	r.GET("/preferences/notifications", api.ResolveEndpointWithAuth(ctl.getNotifications))
	r.PUT("/preferences/notifications", api.ResolveEndpointWithAuth(ctl.putNotifications))
	r.GET("/preferences/fonts", api.ResolveEndpointWithAuth(ctl.getFonts))
	r.PUT("/preferences/fonts", api.ResolveEndpointWithAuth(ctl.putFonts))
	r.GET("/preferences/dark-mode", api.ResolveEndpointWithAuth(ctl.getDarkMode))
	r.PUT("/preferences/dark-mode", api.ResolveEndpointWithAuth(ctl.putDarkMode))
	r.GET("/last-read", api.ResolveEndpointWithAuth(ctl.getLastRead))
	r.PUT("/last-read", api.ResolveEndpointWithAuth(ctl.putLastRead))
	r.GET("/city", api.ResolveEndpointWithAuth(ctl.getCity))
	r.PUT("/city", api.ResolveEndpointWithAuth(ctl.putCity))
	r.POST("/landing-seen", api.ResolveEndpointWithAuth(ctl.markLandingSeen))
}

// GET /api/account/preferences/notifications
func (p *PreferencesController) getNotifications(_ *gin.Context, user *model.User) (any, *api.Error) {
	prefs, err := p.store.NotificationPreferences(user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return prefs, nil
}

// PUT /api/account/preferences/notifications
//
// Saving does not retract alerts that are already armed: the arm-time gate
// is the only gate. It does nudge the scheduler so newly enabled prayers are
// armed without waiting for the midnight pass.
func (p *PreferencesController) putNotifications(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.SavePreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.SaveNotificationPreferences(user.ID, request.Preferences); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	p.alerts.Refresh()
	return request.Preferences, nil
}

// GET /api/account/preferences/fonts
func (p *PreferencesController) getFonts(_ *gin.Context, user *model.User) (any, *api.Error) {
	settings, err := p.store.FontSettings(user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return settings, nil
}

// PUT /api/account/preferences/fonts
func (p *PreferencesController) putFonts(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.SaveFontSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.SaveFontSettings(user.ID, request.Settings); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return request.Settings, nil
}

// GET /api/account/preferences/dark-mode
func (p *PreferencesController) getDarkMode(_ *gin.Context, user *model.User) (any, *api.Error) {
	enabled, err := p.store.DarkMode(user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"enabled": enabled}, nil
}

// PUT /api/account/preferences/dark-mode
func (p *PreferencesController) putDarkMode(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.SaveDarkModeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.SaveDarkMode(user.ID, *request.Enabled); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"enabled": *request.Enabled}, nil
}

// GET /api/account/last-read
func (p *PreferencesController) getLastRead(_ *gin.Context, user *model.User) (any, *api.Error) {
	lastRead, err := p.store.LastRead(user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	if lastRead == nil {
		return gin.H{}, nil
	}
	return lastRead, nil
}

// PUT /api/account/last-read
func (p *PreferencesController) putLastRead(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.SaveLastReadRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	lastRead := model.LastRead{
		Surah:     request.Surah,
		Name:      request.Name,
		Timestamp: time.Now(),
	}
	if err := p.store.SaveLastRead(user.ID, lastRead); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return lastRead, nil
}

// GET /api/account/city
func (p *PreferencesController) getCity(_ *gin.Context, user *model.User) (any, *api.Error) {
	city, err := p.store.SelectedCity(user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	if city == nil {
		// No city selected yet; the client renders its selection prompt.
		return gin.H{}, nil
	}
	return city, nil
}

// PUT /api/account/city
func (p *PreferencesController) putCity(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.SelectCityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	city := model.SelectedCity{ID: request.ID, Name: request.Name}
	if err := p.store.SaveSelectedCity(user.ID, city); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	p.alerts.Refresh()
	return city, nil
}

// POST /api/account/landing-seen
func (p *PreferencesController) markLandingSeen(_ *gin.Context, user *model.User) (any, *api.Error) {
	if err := p.store.MarkLandingPageSeen(user.ID); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"seen": true}, nil
}

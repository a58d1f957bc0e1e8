package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/http/api"
	"github.com/hymuslim/hymuslim-server/internal/http/api/account/packets"
	"github.com/hymuslim/hymuslim-server/internal/model"
	"github.com/hymuslim/hymuslim-server/internal/notify"
	"github.com/hymuslim/hymuslim-server/internal/scheduler"
)

type AlertsController struct {
	alerts   *scheduler.Scheduler
	notifier notify.Notifier
}

func NewAlertsController(alerts *scheduler.Scheduler, notifier notify.Notifier) *AlertsController {
	return &AlertsController{alerts: alerts, notifier: notifier}
}

// RegisterAlertRoutes mounts the notification arming and push endpoints.
func RegisterAlertRoutes(r gin.IRoutes, alerts *scheduler.Scheduler, notifier notify.Notifier) {
	ctl := NewAlertsController(alerts, notifier)
	r.POST("/alerts/arm", api.ResolveEndpointWithAuth(ctl.arm))
	r.POST("/alerts/push", api.ResolveEndpointWithAuth(ctl.push))
}

// POST /api/account/alerts/arm
//
// Re-arms today's alerts for the account's selected city, the server-side
// equivalent of the client re-scheduling on page load.
func (a *AlertsController) arm(ctx *gin.Context, user *model.User) (any, *api.Error) {
	armed, err := a.alerts.ArmDay(ctx.Request.Context(), user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"armed": armed}, nil
}

// POST /api/account/alerts/push
//
// Wraps an arbitrary text payload in the standard notification envelope and
// delivers it to the account's devices immediately.
func (a *AlertsController) push(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.PushAlertRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	alert := notify.FromPush(request.Text)
	if err := a.notifier.Publish(user.ID, alert); err != nil {
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "could not deliver alert"}
	}
	return alert, nil
}

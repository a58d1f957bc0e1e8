package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/http/api"
	"github.com/hymuslim/hymuslim-server/internal/http/api/public/packets"
	"github.com/hymuslim/hymuslim-server/internal/prayer"
)

type PrayerController struct {
	prayers *prayer.Service
}

func NewPrayerController(prayers *prayer.Service) *PrayerController {
	return &PrayerController{prayers: prayers}
}

// RegisterPrayerRoutes mounts the prayer time endpoints.
func RegisterPrayerRoutes(r gin.IRoutes, prayers *prayer.Service) {
	ctl := NewPrayerController(prayers)
	r.GET("/prayer/times", api.ResolveEndpoint(ctl.times))
	r.GET("/prayer/next", api.ResolveEndpoint(ctl.next))
	r.GET("/hijri/today", api.ResolveEndpoint(ctl.hijriToday))
	r.GET("/cities", api.ResolveEndpoint(ctl.cities))
}

// GET /api/prayer/times?city=<id>
func (p *PrayerController) times(ctx *gin.Context) (any, *api.Error) {
	cityID := ctx.Query("city")
	if cityID == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "city query parameter is required"}
	}

	times := p.prayers.Times(ctx.Request.Context(), cityID)
	return packets.TimesResponse{
		City:  cityID,
		Date:  time.Now().Format("2006/01/02"),
		Times: times,
		Next:  p.prayers.NextPrayer(ctx.Request.Context(), cityID),
	}, nil
}

// GET /api/prayer/next?city=<id>
func (p *PrayerController) next(ctx *gin.Context) (any, *api.Error) {
	cityID := ctx.Query("city")
	if cityID == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "city query parameter is required"}
	}

	return packets.NextResponse{
		City: cityID,
		Next: p.prayers.NextPrayer(ctx.Request.Context(), cityID),
	}, nil
}

// GET /api/hijri/today
func (p *PrayerController) hijriToday(ctx *gin.Context) (any, *api.Error) {
	return packets.HijriResponse{Hijri: p.prayers.HijriToday(ctx.Request.Context())}, nil
}

// GET /api/cities
func (p *PrayerController) cities(ctx *gin.Context) (any, *api.Error) {
	return packets.CitiesResponse{Cities: p.prayers.Cities(ctx.Request.Context())}, nil
}

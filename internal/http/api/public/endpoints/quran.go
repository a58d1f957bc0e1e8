package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/http/api"
	"github.com/hymuslim/hymuslim-server/internal/http/api/public/packets"
	"github.com/hymuslim/hymuslim-server/internal/quran"
)

type QuranController struct {
	quran *quran.Service
}

func NewQuranController(svc *quran.Service) *QuranController {
	return &QuranController{quran: svc}
}

// RegisterQuranRoutes mounts the chapter catalogue and chapter endpoints.
func RegisterQuranRoutes(r gin.IRoutes, svc *quran.Service) {
	ctl := NewQuranController(svc)
	r.GET("/quran/surahs", api.ResolveEndpoint(ctl.listSurahs))
	r.GET("/quran/surahs/:number", api.ResolveEndpoint(ctl.getSurah))
}

// GET /api/quran/surahs
func (q *QuranController) listSurahs(ctx *gin.Context) (any, *api.Error) {
	return packets.SurahListResponse{Surahs: q.quran.Surahs(ctx.Request.Context())}, nil
}

// GET /api/quran/surahs/:number
func (q *QuranController) getSurah(ctx *gin.Context) (any, *api.Error) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid surah number"}
	}

	surah, err := q.quran.Surah(ctx.Request.Context(), number)
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadGateway, Message: err.Error()}
	}
	return surah, nil
}

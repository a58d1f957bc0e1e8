package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/db"
	"github.com/hymuslim/hymuslim-server/internal/http/api"
	"github.com/hymuslim/hymuslim-server/internal/http/api/account/packets"
	"github.com/hymuslim/hymuslim-server/internal/model"
)

type BookmarksController struct {
	store db.Store
}

func NewBookmarksController(store db.Store) *BookmarksController {
	return &BookmarksController{store: store}
}

// RegisterBookmarkRoutes mounts the bookmark list endpoints.
func RegisterBookmarkRoutes(r gin.IRoutes, store db.Store) {
	ctl := NewBookmarksController(store)
	r.GET("/bookmarks", api.ResolveEndpointWithAuth(ctl.list))
	r.POST("/bookmarks/toggle", api.ResolveEndpointWithAuth(ctl.toggle))
	r.DELETE("/bookmarks/:position", api.ResolveEndpointWithAuth(ctl.deleteAt))
}

// GET /api/account/bookmarks
func (b *BookmarksController) list(_ *gin.Context, user *model.User) (any, *api.Error) {
	bookmarks, err := b.store.Bookmarks(user.ID)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"bookmarks": bookmarks}, nil
}

// POST /api/account/bookmarks/toggle
func (b *BookmarksController) toggle(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.ToggleBookmarkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	added, err := b.store.ToggleBookmark(user.ID, model.Bookmark{
		Surah:     request.Surah,
		SurahName: request.SurahName,
		Verse:     request.Verse,
		Timestamp: time.Now(),
	})
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"added": added}, nil
}

// DELETE /api/account/bookmarks/:position
func (b *BookmarksController) deleteAt(ctx *gin.Context, user *model.User) (any, *api.Error) {
	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid bookmark position"}
	}

	if err := b.store.DeleteBookmarkAt(user.ID, position); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return gin.H{"deleted": position}, nil
}

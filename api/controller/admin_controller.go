package controller

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
)

type AdminController struct {
	SongUsecase  domain.SongUsecase
	AlbumUsecase domain.AlbumUsecase
	Env          *bootstrap.Env
}

// CreateSong ingests a song from a multipart form. Both files are
// required up front; the request is rejected before any upload is
// attempted when either is missing.
func (ac *AdminController) CreateSong(c *gin.Context) {
	audioHeader, audioErr := c.FormFile(domain.PayloadAudio)
	imageHeader, imageErr := c.FormFile(domain.PayloadImage)
	if audioErr != nil || imageErr != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "please upload all files"})
		return
	}

	duration, err := strconv.Atoi(c.PostForm("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid fields: duration"})
		return
	}

	audio, audioFile, err := openPayload(audioHeader, domain.PayloadAudio, domain.MediaKindAudio)
	if err != nil {
		respondError(c, ac.Env.AppEnv, "create song", err)
		return
	}
	defer audioFile.Close()

	image, imageFile, err := openPayload(imageHeader, domain.PayloadImage, domain.MediaKindImage)
	if err != nil {
		respondError(c, ac.Env.AppEnv, "create song", err)
		return
	}
	defer imageFile.Close()

	req := &domain.CreateSongRequest{
		Title:    c.PostForm("title"),
		Artist:   c.PostForm("artist"),
		Duration: duration,
		AlbumID:  c.PostForm("albumId"),
		Audio:    audio,
		Image:    image,
	}

	song, err := ac.SongUsecase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ac.Env.AppEnv, "create song", err)
		return
	}
	c.JSON(http.StatusCreated, song)
}

func (ac *AdminController) DeleteSong(c *gin.Context) {
	if err := ac.SongUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ac.Env.AppEnv, "delete song", err)
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse{Message: "song deleted successfully"})
}

func (ac *AdminController) CreateAlbum(c *gin.Context) {
	imageHeader, err := c.FormFile(domain.PayloadImage)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "please upload all files"})
		return
	}

	releaseYear, err := strconv.Atoi(c.PostForm("releaseYear"))
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid fields: releaseYear"})
		return
	}

	image, imageFile, err := openPayload(imageHeader, domain.PayloadImage, domain.MediaKindImage)
	if err != nil {
		respondError(c, ac.Env.AppEnv, "create album", err)
		return
	}
	defer imageFile.Close()

	req := &domain.CreateAlbumRequest{
		Title:       c.PostForm("title"),
		Artist:      c.PostForm("artist"),
		ReleaseYear: releaseYear,
		Image:       image,
	}

	album, err := ac.AlbumUsecase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ac.Env.AppEnv, "create album", err)
		return
	}
	c.JSON(http.StatusCreated, album)
}

func (ac *AdminController) DeleteAlbum(c *gin.Context) {
	if err := ac.AlbumUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ac.Env.AppEnv, "delete album", err)
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse{Message: "album deleted successfully"})
}

// Check lets the client verify its admin standing; the middleware has
// already done the work by the time this runs.
func (ac *AdminController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": true})
}

func openPayload(header *multipart.FileHeader, name string, kind domain.MediaKind) (*domain.MediaPayload, multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	payload := &domain.MediaPayload{
		Name:     name,
		Kind:     kind,
		Filename: header.Filename,
		Data:     file,
	}
	return payload, file, nil
}

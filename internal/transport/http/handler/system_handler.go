package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-user-api/internal/dto"
	"go-user-api/internal/version"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler { return &SystemHandler{} }

func (h *SystemHandler) Mount(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/healthcheck", h.Healthcheck)
	r.GET("/version", h.Version)
	r.GET("/status_code/:status_code", h.StatusCode)
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Message": "Welcome to the User Service Boilerplate"})
}

func (h *SystemHandler) Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SystemHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VersionResponse{Version: version.ServiceAppVersion})
}

// StatusCode 联调用：按传入的状态码回响应
func (h *SystemHandler) StatusCode(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("status_code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid status code"})
		return
	}
	switch code {
	case http.StatusOK:
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
	case http.StatusNotFound:
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Not Found"})
	case http.StatusInternalServerError:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal Server Error"})
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid status code"})
	}
}

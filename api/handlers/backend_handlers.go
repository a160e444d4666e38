package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"local-llm-chat/dto"
	"local-llm-chat/services"
)

// ModelsHandler godoc
// @Summary      List available models
// @Description  Lists the models served by the given endpoint; an unreachable endpoint reports an empty list
// @Tags         backend
// @Param        endpoint  query  string  false  "backend base URL"
// @Produce      json
// @Success      200  {object}  dto.ModelsResponseDTO
// @Router       /models [get]
func ModelsHandler(svc *services.BackendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		names := svc.Models(c.Request.Context(), c.Query("endpoint"))
		c.JSON(http.StatusOK, dto.ModelsResponseDTO{Models: names})
	}
}

// StatusHandler godoc
// @Summary      Probe the model service
// @Description  Reports whether the endpoint is serving and which models it exposes
// @Tags         backend
// @Param        endpoint  query  string  false  "backend base URL"
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Router       /llm_status [get]
func StatusHandler(svc *services.BackendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		info := svc.Status(c.Request.Context(), c.Query("endpoint"))
		c.JSON(http.StatusOK, dto.StatusResponseDTO{
			Running:     info.Running,
			Endpoint:    info.Endpoint,
			Protocol:    string(info.Protocol),
			Models:      info.Models,
			ActiveModel: info.ActiveModel,
		})
	}
}

// ShutdownHandler godoc
// @Summary      Shut the server down
// @Description  Acknowledges, then drains in-flight requests and stops the server
// @Tags         server
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /shutdown [post]
func ShutdownHandler(shutdown func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Server shutting down..."})
		// Trigger after responding so this request is not caught in the
		// drain.
		go shutdown()
	}
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/services"
)

// MessageController handles the admin inbox endpoints
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new message controller
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// RegisterRoutes registers message routes
func (c *MessageController) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	{
		messages.GET("", c.ListMessages)
		messages.GET("/:id", c.GetMessage)
		messages.DELETE("/:id", c.DeleteMessage)
	}
}

// ListMessages retrieves all messages, newest first
func (c *MessageController) ListMessages(ctx *gin.Context) {
	messages, err := c.messageService.ListMessages()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, messages)
}

// GetMessage retrieves a message; opening it marks it read
func (c *MessageController) GetMessage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.GetMessage(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, message)
}

// DeleteMessage removes a message
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.messageService.DeleteMessage(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Message deleted successfully")
}

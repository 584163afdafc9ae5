package controllers

import "github.com/gin-gonic/gin"

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

// RespondValidationError devolve 400 com uma mensagem por campo violado.
func RespondValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(400, gin.H{"errors": fields})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(201, payload)
}

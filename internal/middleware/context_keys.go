package middleware

import "github.com/gin-gonic/gin"

// employeeIDKey is the key used to store the acting employee's ID in the
// request context.
const employeeIDKey = contextKey("employeeID")

// GetEmployeeIDFromContext retrieves the acting employee ID from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	employeeIDVal := c.Request.Context().Value(employeeIDKey)
	if employeeIDVal == nil {
		return "", false
	}

	employeeID, ok := employeeIDVal.(string)
	if !ok {
		return "", false
	}

	return employeeID, true
}

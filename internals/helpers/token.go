package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrNoUserID = errors.New("no user id in token")

// UserID returns the subject id the auth middleware stored in locals.
// Superadmin tokens carry no id, so callers that require a stored user must
// handle ErrNoUserID.
func UserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("userID").(uint)
	if !ok || id == 0 {
		return 0, ErrNoUserID
	}
	return id, nil
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func IsStaff(role string) bool {
	return role == "teacher" || role == "admin" || role == "superadmin"
}

// ParamUint parses a numeric path segment. 0 is never a valid id.
func ParamUint(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(v), nil
}

package auth

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func roleApp(roles []string) *fiber.App {
	app := fiber.New()
	if roles != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userRoles", roles)
			return c.Next()
		})
	}
	app.Get("/admin", OnlyRoles("akses ditolak", "Admin", "HRAdmin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRoles(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		want  int
	}{
		{"tanpa role", nil, fiber.StatusUnauthorized},
		{"role kosong", []string{}, fiber.StatusUnauthorized},
		{"user biasa", []string{"User"}, fiber.StatusForbidden},
		{"admin", []string{"Admin"}, fiber.StatusOK},
		{"hradmin", []string{"HRAdmin"}, fiber.StatusOK},
		{"campuran", []string{"User", "HRAdmin"}, fiber.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app := roleApp(c.roles)
			req, _ := http.NewRequest("GET", "/admin", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != c.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, c.want)
			}
		})
	}
}

func TestExtractRoles(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   int
	}{
		{"slice any", jwt.MapClaims{"roles": []any{"Admin", "User"}}, 2},
		{"string tunggal", jwt.MapClaims{"roles": "User"}, 1},
		{"string kosong", jwt.MapClaims{"roles": ""}, 0},
		{"tidak ada klaim", jwt.MapClaims{}, 0},
		{"tipe aneh", jwt.MapClaims{"roles": 42}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := extractRoles(c.claims)
			if len(got) != c.want {
				t.Errorf("extractRoles = %v, want %d role", got, c.want)
			}
		})
	}
}

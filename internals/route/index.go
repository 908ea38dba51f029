// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/configs"
	batchRoutes "coursepay_backend/internals/features/courses/batches/routes"
	courseRoutes "coursepay_backend/internals/features/courses/courses/routes"
	lcRoutes "coursepay_backend/internals/features/courses/lecturer_courses/routes"
	salaryRoutes "coursepay_backend/internals/features/reports/salary/routes"
	authRoutes "coursepay_backend/internals/features/users/auth/routes"
	userRoutes "coursepay_backend/internals/features/users/user/routes"
	"coursepay_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Reads are open to any
// authenticated user, mutations need admin, account management superadmin.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Public surface: login + stored screenshots
	authRoutes.AuthPublicRoutes(app.Group("/api"), db)
	app.Static("/uploads", configs.UploadDir)

	api := app.Group("/api", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	authRoutes.AuthPrivateRoutes(api, db)
	courseRoutes.CourseReadRoutes(api, db)
	batchRoutes.BatchReadRoutes(api, db)
	lcRoutes.LecturerCourseReadRoutes(api, db)
	salaryRoutes.BatchSalaryReadRoutes(api, db)

	admin := api.Group("", auth.OnlyRoles(
		"Access denied: admin role required",
		"admin", "superadmin",
	))
	courseRoutes.CourseAdminRoutes(admin, db)
	batchRoutes.BatchAdminRoutes(admin, db)
	lcRoutes.LecturerCourseAdminRoutes(admin, db)
	salaryRoutes.BatchSalaryAdminRoutes(admin, db)

	superadmin := api.Group("", auth.OnlyRoles(
		"Access denied: superadmin role required",
		"superadmin",
	))
	userRoutes.UserSuperadminRoutes(superadmin, db)
}

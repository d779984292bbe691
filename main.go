package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/Aqsa-Memon/TODO-APP/middleware/ratelimit"
	"github.com/Aqsa-Memon/TODO-APP/modules/api"
	"github.com/Aqsa-Memon/TODO-APP/modules/auth"
	"github.com/Aqsa-Memon/TODO-APP/modules/task"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Todo API ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Rate limiting is opt-in: only enabled when a Redis address is
	// configured. Middleware must be registered before regular modules
	// so it can intercept their service registrations.
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		rateLimitMiddleware, err := ratelimit.New(
			ratelimit.WithRedisAddr(redisAddr),
			ratelimit.WithRedisPassword(os.Getenv("REDIS_PASSWORD")),
			ratelimit.WithDefaultLimit(100, time.Minute),
			// Credential endpoints get tighter limits than task traffic.
			ratelimit.WithServiceLimit(auth.ServiceSignup, 10, time.Minute),
			ratelimit.WithServiceLimit(auth.ServiceLogin, 20, time.Minute),
		)
		if err != nil {
			log.Fatalf("Failed to create rate limiting middleware: %v", err)
		}
		app.Register(rateLimitMiddleware)
	}

	// Independent modules first, then the API module that depends on them.
	app.Register(auth.NewModule())
	app.Register(task.NewModule())
	app.Register(api.NewModule())

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:8080):")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/auth/signup                        - Create an account")
	log.Println("  POST   /api/auth/login                         - Login and get a token")
	log.Println("  GET    /api/health                             - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/{user_id}/tasks                    - List your tasks")
	log.Println("  POST   /api/{user_id}/tasks                    - Create a task")
	log.Println("  GET    /api/{user_id}/tasks/{id}               - Get a task")
	log.Println("  PUT    /api/{user_id}/tasks/{id}               - Update a task")
	log.Println("  DELETE /api/{user_id}/tasks/{id}               - Delete a task")
	log.Println("  PATCH  /api/{user_id}/tasks/{id}/complete      - Toggle completion")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

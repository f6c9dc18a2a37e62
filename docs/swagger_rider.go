package docs

// @title           Rider Service API
// @version         1.0
// @description     Rider service handles rider onboarding, daily activity submission, and the weekly earnings dashboard. Public API consumed by the mobile client.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /

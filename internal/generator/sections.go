package generator

import "github.com/blackwell-systems/ctxforge/internal/analyzer"

// setupSection returns a development environment section for the
// framework's toolchain family, or empty when none applies.
func setupSection(framework string) string {
	switch framework {
	case "laravel":
		return `## Development Setup

` + "```bash" + `
composer install
cp .env.example .env
php artisan key:generate
php artisan migrate
php artisan serve
` + "```"
	case "symfony", "codeigniter":
		return `## Development Setup

` + "```bash" + `
composer install
cp .env.example .env
php -S localhost:8000
` + "```"
	case "react", "vue", "angular", "svelte":
		return `## Development Setup

` + "```bash" + `
npm install
npm start
npm run build
` + "```"
	case "next", "nuxt":
		return `## Development Setup

` + "```bash" + `
npm install
npm run dev
npm run build
` + "```"
	case "django":
		return `## Development Setup

` + "```bash" + `
python -m venv venv
source venv/bin/activate
pip install -r requirements.txt
python manage.py migrate
python manage.py runserver
` + "```"
	case "flask", "fastapi":
		return `## Development Setup

` + "```bash" + `
python -m venv venv
source venv/bin/activate
pip install -r requirements.txt
flask run
` + "```"
	case "express", "fastify", "koa", "nestjs":
		return `## Development Setup

` + "```bash" + `
npm install
npm run dev
` + "```"
	}
	return ""
}

// testingSection returns a testing section when the project already has
// tests, tailored to the framework's test runner.
func testingSection(c *analyzer.Classification) string {
	if !c.HasTests {
		return ""
	}
	switch c.PrimaryFramework {
	case "laravel":
		return `## Testing

` + "```bash" + `
php artisan test
php artisan test --filter TestName
` + "```" + `

- Use factories for test data
- Write both feature and unit tests
- Cover authentication and authorization paths`
	case "react", "vue", "angular", "svelte", "next", "nuxt":
		return `## Testing

` + "```bash" + `
npm test
npm run test:coverage
` + "```" + `

- Test components in isolation
- Mock API calls
- Cover user interactions`
	case "django":
		return `## Testing

` + "```bash" + `
python manage.py test
` + "```" + `

- Test views, models, and forms
- Use fixtures for data`
	default:
		return `## Testing

- Write unit tests for new code
- Cover edge cases
- Keep coverage up`
	}
}

// deploymentSection returns a deployment checklist for the framework
// family.
func deploymentSection(framework string) string {
	base := `## Deployment

1. All tests pass
2. Documentation updated
3. Production configuration verified
`
	switch framework {
	case "laravel":
		return base + `
` + "```bash" + `
php artisan config:cache
php artisan route:cache
php artisan migrate --force
composer install --optimize-autoloader --no-dev
` + "```"
	case "react", "vue", "angular", "svelte", "next", "nuxt":
		return base + `
` + "```bash" + `
npm run build
` + "```"
	case "django", "flask", "fastapi":
		return base + `
` + "```bash" + `
pip install -r requirements.txt
gunicorn app:app
` + "```"
	}
	return base
}

// frameworkSections are appended verbatim for frameworks with specific
// working conventions.
var frameworkSections = map[string]string{
	"laravel": `## Laravel Conventions

- Follow PSR-12 and Laravel naming conventions
- Use Eloquent relationships over manual joins
- Keep controllers thin; push logic into services
- Use form requests for validation`,
	"react": `## React Conventions

- Function components with hooks
- Keep components small; lift state deliberately
- Co-locate component, styles, and tests
- Memoize only after measuring`,
	"vue": `## Vue Conventions

- Single-file components
- Composition API for new code
- Keep props typed and events explicit`,
	"django": `## Django Conventions

- Fat models, thin views
- Use the ORM; avoid raw SQL unless measured
- Settings split per environment`,
	"flask": `## Flask Conventions

- Application factory pattern
- Blueprints per feature area
- Configuration from environment variables`,
	"express": `## Express Conventions

- Routers per resource
- Centralized error-handling middleware
- Validate request bodies at the edge`,
	"next": `## Next.js Conventions

- Prefer server components where possible
- Co-locate route handlers with pages
- Use the image and font optimizations`,
}

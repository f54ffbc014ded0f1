// Package rules holds the built-in compliance catalog. Everything here is
// data interpreted by the generic discovery/matcher components: adding a
// check is a catalog change, not a code change.
package rules

import "github.com/deploycheck/deploycheck/internal/domain"

// Severity-default weights for the built-in catalog.
const (
	weightCritical = 3
	weightWarning  = 2
	weightInfo     = 1
)

var workflowPatterns = []string{".github/workflows/*.yml"}

var iacPatterns = []string{"**/*.tf", "**/*.bicep", "**/template.yml"}

var k8sManifestPatterns = []string{
	"**/k8s/**/*.yml",
	"**/kubernetes/**/*.yml",
	"**/manifests/**/*.yml",
	"**/deploy/**/*.yml",
	"**/deployment/**/*.yml",
	"**/helm/**/*.yml",
	"**/*k8s*.yml",
}

var dependencyManifestPatterns = []string{
	"pyproject.toml", "requirements*.txt", "poetry.lock", "Pipfile", "Pipfile.lock",
}

// Default returns the built-in catalog: Docker, CI/CD, quality, IaC,
// Kubernetes, observability and documentation checks for deployment sign-off.
func Default() *domain.Catalog {
	return &domain.Catalog{
		Aliases: map[string][]string{
			// Wrapper packages that pull in the Prometheus client
			// transitively. Data, not code: extend freely.
			"prometheus_client": {
				"prometheus-flask-exporter",
				"prometheus-fastapi-instrumentator",
				"starlette-exporter",
				"django-prometheus",
				"opentelemetry-exporter-prometheus",
			},
		},
		Rules: []domain.Rule{
			// ── Docker ──
			{
				ID:           "docker-dockerfile-exists",
				Description:  "Dockerfile exists",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: []string{"Dockerfile"},
			},
			{
				ID:           "docker-dockerignore-exists",
				Description:  ".dockerignore exists",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{".dockerignore"},
			},
			{
				ID:           "docker-base-image-declared",
				Description:  "Dockerfile specifies a base image",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: []string{"Dockerfile"},
				Predicate:    &domain.Predicate{Term: "FROM ", CaseSensitive: true},
			},
			{
				ID:           "docker-avoids-latest-tag",
				Description:  "Dockerfile pins the base image tag instead of latest",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"Dockerfile"},
				Predicate:    &domain.Predicate{Term: ":latest"},
				MustNotMatch: true,
			},
			{
				ID:           "docker-non-root-user",
				Description:  "Dockerfile sets a non-root USER",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"Dockerfile"},
				Predicate:    &domain.Predicate{Term: "USER ", CaseSensitive: true},
			},
			{
				ID:           "docker-healthcheck",
				Description:  "Dockerfile declares a HEALTHCHECK",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityInfo,
				Weight:       weightInfo,
				PathPatterns: []string{"Dockerfile"},
				Predicate:    &domain.Predicate{Term: "HEALTHCHECK", CaseSensitive: true},
			},
			{
				ID:           "docker-compose-file",
				Description:  "Docker Compose file exists",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityInfo,
				Weight:       weightInfo,
				PathPatterns: []string{"docker-compose.yml", "compose.yml"},
			},

			// ── CI/CD ──
			{
				ID:           "cicd-workflows-exist",
				Description:  "GitHub Actions workflows exist",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: workflowPatterns,
			},
			{
				ID:           "cicd-pipeline-triggers",
				Description:  "Pipeline has triggers",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: workflowPatterns,
				Predicate: &domain.Predicate{
					Term:    "push",
					Aliases: []string{"pull_request", "workflow_dispatch"},
				},
			},
			{
				ID:           "cicd-checkout-step",
				Description:  "Pipeline checks out code",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: workflowPatterns,
				Predicate:    &domain.Predicate{Term: "actions/checkout"},
			},
			{
				ID:           "cicd-test-step",
				Description:  "Pipeline runs tests",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: workflowPatterns,
				Predicate: &domain.Predicate{
					Term: "pytest",
					Aliases: []string{
						"npm test", "go test", "dotnet test",
						"mvn test", "gradle test", "unittest",
					},
				},
			},
			{
				ID:           "cicd-build-step",
				Description:  "Pipeline has a build/package step",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: workflowPatterns,
				Predicate: &domain.Predicate{
					Term:    "docker build",
					Aliases: []string{"buildx", "build and push", "publish", "package"},
				},
			},
			{
				ID:           "cicd-security-scan",
				Description:  "Pipeline has security scanning",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityInfo,
				Weight:       weightInfo,
				PathPatterns: workflowPatterns,
				Predicate: &domain.Predicate{
					Term:    "codeql",
					Aliases: []string{"trivy", "snyk", "bandit", "gitleaks", "dependency-review-action"},
				},
			},
			{
				ID:           "cicd-registry-push",
				Description:  "Pipeline pushes an image to a registry",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: workflowPatterns,
				Predicate: &domain.Predicate{
					Term: "docker/build-push-action",
					Aliases: []string{
						"docker/login-action", "docker push", "buildx",
						"ecr", "gcr.io", "ghcr.io", "acr",
					},
				},
			},
			{
				ID:           "cicd-deploy-step",
				Description:  "Pipeline deploys the application",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: workflowPatterns,
				Predicate: &domain.Predicate{
					Term: "kubectl apply",
					Aliases: []string{
						"kubectl rollout", "helm upgrade", "helm install",
						"terraform apply", "pulumi up", "ecs deploy",
						"azure/webapps-deploy", "gcloud run deploy",
					},
				},
			},

			// ── Quality ──
			{
				ID:          "quality-tests-present",
				Description: "Automated tests present",
				Category:    domain.CategoryFileExistence,
				Severity:    domain.SeverityCritical,
				Weight:      weightCritical,
				PathPatterns: []string{
					"**/tests/**", "**/test/**",
					"**/*_test.py", "**/test_*.py", "**/*_test.go",
					"**/*.spec.js", "**/*.test.js", "**/*.spec.ts", "**/*.test.ts",
				},
			},
			{
				ID:          "quality-lint-config",
				Description: "Lint/format config present",
				Category:    domain.CategoryFileExistence,
				Severity:    domain.SeverityWarning,
				Weight:      weightWarning,
				PathPatterns: []string{
					".flake8", "pyproject.toml", "ruff.toml", "pylintrc",
					".eslintrc", ".eslintrc.js", ".eslintrc.json", "eslint.config.js",
					".golangci.yml",
				},
			},

			// ── Infrastructure as Code ──
			{
				ID:           "iac-present",
				Description:  "Infrastructure as Code present",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: iacPatterns,
			},
			{
				ID:           "iac-compute-resources",
				Description:  "IaC defines compute resources",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: iacPatterns,
				Predicate: &domain.Predicate{
					Term:    "container",
					Aliases: []string{"ecs", "eks", "app_service", "cloud run", "kubernetes"},
				},
			},
			{
				ID:           "iac-network-resources",
				Description:  "IaC defines networking resources",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: iacPatterns,
				Predicate: &domain.Predicate{
					Term:    "vpc",
					Aliases: []string{"subnet", "security_group", "network", "route"},
				},
			},
			{
				ID:           "iac-database-resources",
				Description:  "IaC defines database resources",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: iacPatterns,
				Predicate: &domain.Predicate{
					Term:    "database",
					Aliases: []string{"postgres", "rds", "sql", "db_instance"},
				},
			},

			// ── Kubernetes ──
			{
				ID:           "k8s-manifests-present",
				Description:  "Kubernetes manifests present",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: k8sManifestPatterns,
			},
			{
				ID:           "k8s-deployment-manifest",
				Description:  "Kubernetes Deployment manifest",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: k8sManifestPatterns,
				Predicate:    &domain.Predicate{Term: "kind: Deployment"},
			},
			{
				ID:           "k8s-service-manifest",
				Description:  "Kubernetes Service manifest",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: k8sManifestPatterns,
				Predicate:    &domain.Predicate{Term: "kind: Service"},
			},
			{
				ID:           "k8s-configmap-manifest",
				Description:  "Kubernetes ConfigMap manifest",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: k8sManifestPatterns,
				Predicate:    &domain.Predicate{Term: "kind: ConfigMap"},
			},
			{
				ID:              "k8s-secret-manifest",
				Description:     "Kubernetes Secret manifest",
				Category:        domain.CategoryContentMatch,
				Severity:        domain.SeverityWarning,
				Weight:          weightWarning,
				PathPatterns:    k8sManifestPatterns,
				Predicate:       &domain.Predicate{Term: "kind: Secret"},
				ExampleVariants: true,
			},
			{
				ID:           "k8s-service-exposed",
				Description:  "Service exposes the app (NodePort/LoadBalancer)",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: k8sManifestPatterns,
				Predicate: &domain.Predicate{
					Term:    "type: LoadBalancer",
					Aliases: []string{"type: NodePort"},
				},
			},
			{
				ID:           "k8s-llm-key-in-secret",
				Description:  "LLM API key stored in a Secret",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: k8sManifestPatterns,
				Predicate: &domain.Predicate{
					Term: "openai_api_key",
					Aliases: []string{
						"anthropic_api_key", "llm_api_key",
						"azure_openai_api_key", "gemini_api_key",
						"secretKeyRef",
					},
				},
				ExampleVariants: true,
			},
			{
				ID:           "k8s-helm-chart",
				Description:  "Helm chart present (optional)",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityInfo,
				Weight:       weightInfo,
				PathPatterns: []string{"**/Chart.yml"},
			},

			// ── Observability ──
			{
				ID:           "obs-prometheus-config",
				Description:  "Prometheus config/manifests present",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"**/prometheus*.yml"},
			},
			{
				ID:           "obs-grafana-dashboards",
				Description:  "Grafana dashboard present",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"**/grafana/**/*.json", "**/dashboards/**/*.json"},
			},
			{
				ID:           "obs-metrics-client-dependency",
				Description:  "App dependencies include a Prometheus metrics client",
				Category:     domain.CategoryDependencyMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: dependencyManifestPatterns,
				Predicate:    &domain.Predicate{Term: "prometheus_client"},
			},
			{
				ID:           "obs-metrics-endpoint",
				Description:  "Metrics endpoint exposed",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"**/*.py"},
				Predicate:    &domain.Predicate{Term: "/metrics"},
			},
			{
				ID:           "obs-llm-metrics",
				Description:  "LLM metrics instrumentation",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityInfo,
				Weight:       weightInfo,
				PathPatterns: []string{"**/*.py"},
				Predicate: &domain.Predicate{
					Term:    "llm",
					Aliases: []string{"token", "latency"},
				},
			},

			// ── Documentation ──
			{
				ID:           "docs-readme-present",
				Description:  "README present",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityCritical,
				Weight:       weightCritical,
				PathPatterns: []string{"README.md", "README"},
			},
			{
				ID:           "docs-readme-deployment",
				Description:  "README covers CI/CD and deployment",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"README.md"},
				Predicate: &domain.Predicate{
					Term:    "deployment",
					Aliases: []string{"ci/cd"},
				},
			},
			{
				ID:           "docs-readme-kubernetes",
				Description:  "README covers Kubernetes",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"README.md"},
				Predicate: &domain.Predicate{
					Term:    "kubernetes",
					Aliases: []string{"k8s"},
				},
			},
			{
				ID:           "docs-readme-monitoring",
				Description:  "README covers monitoring",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       weightWarning,
				PathPatterns: []string{"README.md"},
				Predicate: &domain.Predicate{
					Term:    "monitoring",
					Aliases: []string{"grafana", "prometheus"},
				},
			},
			{
				ID:           "docs-screenshots-referenced",
				Description:  "Screenshots/diagrams referenced",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityInfo,
				Weight:       weightInfo,
				PathPatterns: []string{"README.md"},
				Predicate: &domain.Predicate{
					Term:    ".png",
					Aliases: []string{".jpg", ".jpeg", ".gif", ".svg"},
				},
			},
			{
				ID:          "docs-architecture",
				Description: "Architecture documentation present",
				Category:    domain.CategoryFileExistence,
				Severity:    domain.SeverityInfo,
				Weight:      weightInfo,
				PathPatterns: []string{
					"docs/architecture.md", "docs/adr/*.md", "ARCHITECTURE.md",
				},
			},
		},
	}
}

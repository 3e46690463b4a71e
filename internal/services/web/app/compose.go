package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
)

// ComposeInput carries the modules and shared composition contracts.
type ComposeInput struct {
	Modules []module.Module
	Policy  requestmeta.ProxyPolicy
	// OnForbidden renders rejected cross-origin mutations. Nil writes a
	// plain 403.
	OnForbidden http.Handler
}

// Compose builds a root HTTP handler from modules. Every prefix serves both
// its subtree and its slashless path, and mutating requests are checked for
// same-origin evidence before reaching a module.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	wrap := requireSameOrigin(input.Policy, input.OnForbidden)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		handler := wrap(mount.Handler)
		if err := mountModule(root, feature, handler, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, handler, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, handler http.Handler, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// slashlessPrefixAlias returns "/news" for "/news/" and "" for the root.
func slashlessPrefixAlias(prefix string) string {
	return strings.TrimSuffix(prefix, "/")
}

func requireSameOrigin(policy requestmeta.ProxyPolicy, onForbidden http.Handler) func(http.Handler) http.Handler {
	if onForbidden == nil {
		onForbidden = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutationMethod(r) && requestmeta.IsCrossOrigin(r, policy) {
				onForbidden.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

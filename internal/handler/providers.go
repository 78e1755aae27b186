package handler

import (
	"net/http"

	"github.com/reqlens/reqlens/internal/infrastructure/providers"
)

type providerInfo struct {
	Name         string `json:"name"`
	DefaultModel string `json:"defaultModel"`
	Configured   bool   `json:"configured"`
}

// Providers serves GET /api/providers: the registry contents plus whether
// each provider's credential is present.
func Providers(cfg providers.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		infos := make([]providerInfo, 0, len(providers.Names()))
		for _, name := range providers.Names() {
			p, ok := providers.Lookup(name)
			if !ok {
				continue
			}
			infos = append(infos, providerInfo{
				Name:         p.Name(),
				DefaultModel: p.DefaultModel(),
				Configured:   cfg.Credential(p.Name(), p.CredentialKey()) != "",
			})
		}

		writeJSON(w, http.StatusOK, infos)
	}
}

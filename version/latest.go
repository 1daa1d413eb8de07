package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/network"
	"github.com/anisan-cli/anitaku/util"
	"github.com/anisan-cli/anitaku/where"
	"github.com/metafates/gache"
)

var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// releasesURL is swapped in tests.
var releasesURL = constant.Releases

// Latest returns the newest released version, "v" stripped.
// Lookups are cached for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := latestCache.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", &network.FetchError{URL: releasesURL, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", &network.FetchError{URL: releasesURL, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = latestCache.Set(latest)
	return latest, nil
}

package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-weather/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	version.GitTag = "v1.2.3"
	t.Cleanup(func() { version.GitTag = "" })

	assert.Equal("v1.2.3", version.Version())

	var info version.Info
	assert.NoError(json.Unmarshal(version.JSON("weather"), &info))
	assert.Equal("weather", info.Name)
	assert.Equal("v1.2.3", info.Version)
	assert.Equal("v1.2.3", info.Tag)
	assert.Equal(runtime.Version(), info.Compiler)
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	assert.NotEmpty(version.Version())
}

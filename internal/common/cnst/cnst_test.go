package cnst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppConstants(t *testing.T) {
	assert.Equal(t, "campaignhub", AppName)
	assert.Equal(t, "apiserver", CommandName)
	assert.Equal(t, "apiserver.yaml", ApiServerYaml)
}

func TestLanguageConstants(t *testing.T) {
	assert.Equal(t, "en", LangEN)
	assert.Equal(t, "zh", LangZH)
	assert.Equal(t, "X-Lang", XLang)
}

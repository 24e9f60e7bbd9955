package i18n

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/log"
)

func TestDefaultCatalogLoadsEmbeddedLocales(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en"}, catalog.Locales())
	assert.True(t, catalog.HasLocale("de"))
	assert.False(t, catalog.HasLocale("fr"))
	assert.Equal(t, DefaultLocale, catalog.DefaultLocaleName())

	assert.Contains(t, catalog.Keys("en"), "errors.out_of_range")
	assert.Contains(t, catalog.Keys("de"), "errors.invalid_argument")
}

func TestTryTRendersTemplates(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	data := map[string]interface{}{
		"Operation": "stringx.Slice",
		"Argument":  "end",
		"Value":     9,
		"Min":       0,
		"Max":       5,
	}

	en, err := catalog.TryT("en", "errors.out_of_range", data)
	require.NoError(t, err)
	assert.Equal(t, "stringx.Slice: end 9 is out of range [0, 5]", en)

	de, err := catalog.TryT("de", "errors.out_of_range", data)
	require.NoError(t, err)
	assert.Equal(t, "stringx.Slice: end 9 liegt außerhalb von [0, 5]", de)
}

func TestTryTFallsBackToDefaultLocale(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	// de.yaml has no not_found message
	msg, err := catalog.TryT("de", "errors.not_found", map[string]interface{}{
		"Operation":  "i18n.TryT",
		"Identifier": "errors.x",
	})
	require.NoError(t, err)
	assert.Equal(t, "i18n.TryT: errors.x not found", msg)

	msg, err = catalog.TryT("fr", "errors.operation_failed", map[string]interface{}{"Operation": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x failed", msg)
}

func TestTryTUnknownKey(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	_, err = catalog.TryT("en", "errors.does_not_exist", nil)
	require.Error(t, err)
	assert.True(t, coreerror.HasCode(err, coreerror.CodeNotFound))

	assert.Equal(t, "[errors.does_not_exist]", catalog.T("en", "errors.does_not_exist", nil))
}

func TestTryTWithoutDataReturnsRawMessage(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	raw, err := catalog.TryT("en", "errors.operation_failed", nil)
	require.NoError(t, err)
	assert.Equal(t, "{{.Operation}} failed", raw)
}

func TestNewFromMapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"msgs/en.toml":   {Data: []byte("[greeting]\nhello = \"Hello {{.Name}}\"\n")},
		"msgs/de.yml":    {Data: []byte("greeting:\n  hello: \"Hallo {{.Name}}\"\n")},
		"msgs/readme.md": {Data: []byte("ignored")},
		"msgs/fr.toml":   {Data: []byte("this is = = not toml")},
	}

	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: &buf})

	catalog, err := New(Options{FS: fsys, Dir: "msgs", DefaultLocale: "en", Logger: logger})
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en"}, catalog.Locales())
	assert.Equal(t, "Hallo Ada", catalog.T("de", "greeting.hello", map[string]interface{}{"Name": "Ada"}))
	assert.True(t, strings.Contains(buf.String(), "skipping catalog file"), "broken file should be reported")
	assert.Contains(t, buf.String(), "file=fr.toml")
}

func TestNewRequiresDefaultLocale(t *testing.T) {
	_, err := New(Options{FS: fstest.MapFS{}, DefaultLocale: " "})
	require.Error(t, err)
	assert.True(t, coreerror.HasCode(err, coreerror.CodeInvalidArgument))

	_, err = New(Options{DefaultLocale: "en"})
	require.Error(t, err)

	_, err = New(Options{
		FS:            fstest.MapFS{"de.yaml": {Data: []byte("a: b\n")}},
		DefaultLocale: "en",
	})
	require.Error(t, err)
	assert.True(t, coreerror.HasCode(err, coreerror.CodeOperationFailed))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", Format(9).String())
}

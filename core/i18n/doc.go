// Package i18n provides message catalogs for localised error messages.
//
// Package: i18n
// Title: Message Catalogs
// Description: Catalog files are TOML or YAML documents named after their
//              locale (en.toml, de.yaml). Messages are addressed by dotted
//              keys and rendered with text/template. Keys missing in a
//              locale fall back to the default locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-11
//
// Usage:
//
//	catalog, err := i18n.Default()
//	if err != nil {
//		return err
//	}
//	msg := catalog.T("de", "errors.operation_failed", map[string]interface{}{
//		"Operation": "stringx.Split",
//	})
//	// "stringx.Split fehlgeschlagen"
//
// Custom catalogs are loaded from any fs.FS:
//
//	catalog, err := i18n.New(i18n.Options{
//		FS:            os.DirFS("/etc/myapp"),
//		Dir:           "locales",
//		DefaultLocale: "en",
//	})
package i18n

package render

import _ "embed"

// StyleCSS is the shared stylesheet written next to the generated pages.
//
//go:embed assets/style.css
var StyleCSS []byte

// LayoutSwitcherJS is the client-side layout switcher written next to the
// generated pages.
//
//go:embed assets/layout_switcher.js
var LayoutSwitcherJS []byte

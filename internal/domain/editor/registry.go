package editor

import "strings"

// typeHandler is the full behavior of one block type: default payloads for
// the palette and a serializer for the code generator. Adding a block type
// means adding one entry here; the style resolver, the editor and the
// generator all dispatch through this table.
type typeHandler struct {
	defaultContent func() map[string]string
	defaultStyles  func() StyleMap
	render         func(sb *strings.Builder, b *Block, styles StyleMap)
}

var handlers = map[BlockType]typeHandler{
	TypeText: {
		defaultContent: func() map[string]string {
			return map[string]string{"text": "Write something..."}
		},
		defaultStyles: func() StyleMap {
			return StyleMap{
				"fontSize":  "16px",
				"color":     "#374151",
				"textAlign": "left",
				"padding":   "12px 24px",
			}
		},
		render: renderText,
	},
	TypeImage: {
		defaultContent: func() map[string]string {
			return map[string]string{"src": "", "alt": "", "url": ""}
		},
		defaultStyles: func() StyleMap {
			return StyleMap{
				"width":     "100%",
				"textAlign": "center",
				"padding":   "12px 24px",
			}
		},
		render: renderImage,
	},
	TypeButton: {
		defaultContent: func() map[string]string {
			return map[string]string{"label": "Click me", "url": "#"}
		},
		defaultStyles: func() StyleMap {
			return StyleMap{
				"backgroundColor": "#2563eb",
				"color":           "#ffffff",
				"borderRadius":    "9999px",
				"padding":         "12px 32px",
				"fontSize":        "16px",
				"textAlign":       "center",
			}
		},
		render: renderButton,
	},
	TypeDivider: {
		defaultContent: func() map[string]string {
			return map[string]string{}
		},
		defaultStyles: func() StyleMap {
			return StyleMap{
				"color":     "#e5e7eb",
				"thickness": "1px",
				"padding":   "8px 24px",
			}
		},
		render: renderDivider,
	},
	TypeSpacer: {
		defaultContent: func() map[string]string {
			return map[string]string{}
		},
		defaultStyles: func() StyleMap {
			return StyleMap{"height": "20px"}
		},
		render: renderSpacer,
	},
}

// SupportedTypes lists the registered block types in palette order.
func SupportedTypes() []BlockType {
	return []BlockType{TypeText, TypeImage, TypeButton, TypeDivider, TypeSpacer}
}

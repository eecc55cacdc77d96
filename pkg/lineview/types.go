package lineview

import "github.com/bianoble/line-view/internal/view"

// Type aliases re-export the view types as the public API.
// Users import "github.com/bianoble/line-view/pkg/lineview" and use
// lineview.View, lineview.Line, etc.

type View = view.LineView
type Line = view.Line
type LineKind = view.LineKind
type Provider = view.Provider
type FileProvider = view.FileProvider

const (
	LineDefault = view.LineDefault
	LineTitle   = view.LineTitle
	LineWarning = view.LineWarning
)

// DefaultTitle is the title of buffer-rooted documents that set none.
const DefaultTitle = view.DefaultTitle

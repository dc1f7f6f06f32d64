package styles

// Nerd Font icons used in command output.
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconWindow  = "\uf2d2" // window
	IconCursor  = "\uf054" // chevron-right
	IconArrow   = "\uf061" // arrow right
)

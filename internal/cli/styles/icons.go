package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconInfo     = "\uf05a" // info
	IconTrash    = "\uf1f8" // trash
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconWindow   = "\uf2d0" // window
)

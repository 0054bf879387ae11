package styles

// Toast icons (Nerd Font).
var (
	IconSuccess = "" // nf-fa-check
	IconError   = "" // nf-fa-times
	IconInfo    = "" // nf-fa-info
)

// Page icons.
var (
	IconScissors = "" // nf-fa-scissors
	IconUser     = "" // nf-fa-user
	IconKey      = "" // nf-fa-key
	IconMail     = "" // nf-cod-mail
	IconImage    = "" // nf-fa-image
	IconSignOut  = "" // nf-fa-sign_out
)

package prompts

import _ "embed"

//go:embed thankyou/thankyou.md.tmpl
var ThankYouTemplate string

package app

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// Browser opens a URL in the user's default browser.
type Browser interface {
	Open(url string) error
}

// Notifier tells the user about an upload outcome. For successes message
// is the snippet URL; for failures it is the error text.
type Notifier interface {
	Notify(message string, isError bool) error
}

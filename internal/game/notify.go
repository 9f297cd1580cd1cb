package game

import "github.com/ncruces/zenity"

// Notifier posts a message outside the game window.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier posts native desktop notifications.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return zenity.Notify(message, zenity.Title(title))
}

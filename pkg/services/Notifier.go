package services

/*
Notifier shows a message to whoever started an operation. The website
collects them into the rendered page, the command line prints them.
*/
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}

/*
CollectingNotifier keeps every message in order. It is not safe for
concurrent use.
*/
type CollectingNotifier struct {
	Messages []string
}

func (n *CollectingNotifier) Notify(message string) {
	n.Messages = append(n.Messages, message)
}

package telegram

const (
	tooManyRequests string = "слишком много запросов, подождите немного..."
)

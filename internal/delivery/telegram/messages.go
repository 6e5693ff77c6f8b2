package telegram

// Error messages.
const (
	msgInternalError  = "Что-то пошло не так. Попробуйте позже."
	msgUnknownCommand = "Неизвестная команда. Используйте кнопки ниже или /start."
)

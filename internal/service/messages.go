package service

// Texts sent to users.
const (
	msgGreeting       = "Привет! Я бот для викторин!"
	msgStartFirst     = "Сначала нажмите 'Новый вопрос'"
	msgCorrect        = "Правильно! Поздравляю! Для следующего вопроса нажмите 'Новый вопрос'"
	msgWrong          = "Неправильно… Попробуешь ещё раз?"
	msgCorrectAnswer  = "Правильный ответ: %s"
	msgNextQuestion   = "Следующий вопрос: %s"
	msgDialogFinished = "Диалог завершен"
)

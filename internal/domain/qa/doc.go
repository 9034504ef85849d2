// Package qa содержит доменную модель вопросов и ответов CuOOra.
//
// Это ядро бизнес-логики системы: здесь нет транспорта, хранилища и UI,
// только сущности и их правила. Пакет определяет:
//
//   - Сущности (Entities): User, Topic, Question, Answer, Vote
//   - VoteLedger: владелец голосов одной сущности (один голос на пользователя)
//   - Контракты способностей: Votable, Describable
//   - Интерфейсы репозиториев: UserRepository, QuestionRepository и др.
//
// # Архитектурные принципы
//
//  1. Голосуемость и описываемость - через композицию, а не наследование:
//     сущность владеет VoteLedger и DescriptionHolder и делегирует им.
//  2. Производные значения (лучший ответ, счёт пользователя, выборки
//     положительных/отрицательных голосов) пересчитываются при каждом
//     вызове по живому состоянию - никаких кешей и снапшотов.
//  3. Двусторонние связи (Question↔Topic, User↔Question/Answer)
//     обновляются атомарно: отклонённая операция не оставляет
//     половинчатых ссылок.
//
// # Основные сущности
//
// Question - центральная сущность:
//
//	q, err := NewQuestion(QuestionParams{
//	    Author:      author,
//	    Title:       "Как работает garbage collector в Go?",
//	    Description: "Интересует поведение на больших кучах.",
//	    Topics:      []*Topic{golang},
//	})
//
// Голосование:
//
//	v, _ := NewVote(reader)
//	if err := q.AddVote(v); err != nil { ... } // ErrDuplicateVote при повторе
//
// Лучший ответ - потоковый максимум по чистому счёту голосов:
//
//	best := q.BestAnswer() // nil, если ответов нет
//
// # Потокобезопасность
//
// Сущности не синхронизированы: ядро рассчитано на сериализацию мутаций
// вызывающей стороной. При встраивании в конкурентное окружение мутации
// и чтения графа должны разделяться блокировкой уровня графа
// (см. infrastructure/memory.Store).
package qa

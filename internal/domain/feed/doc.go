// Package feed выдаёт ленты вопросов четырёх видов: социальную,
// тематическую, новостную и популярное за сегодня.
//
// Каждый вид реализован стратегией отбора кандидатов; дальше все
// стратегии проходят общий конвейер: стабильная сортировка
// по возрастанию числа положительных голосов, усечение до limit
// лучших и исключение вопросов самого запрашивающего. Исключение
// выполняется после усечения, поэтому собственные вопросы
// пользователя занимают места в выборке, даже не попадая в ответ.
package feed

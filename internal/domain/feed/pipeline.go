package feed

import (
	"sort"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
)

// ══════════════════════════════════════════════════════════════════════════════
// SHARED PIPELINE
// Общий конвейер всех стратегий: стабильная сортировка по возрастанию
// числа положительных голосов, усечение до верхних limit элементов,
// и только затем исключение вопросов самого запрашивающего.
//
// Порядок "сначала усечь, потом исключить" - контракт, а не ошибка:
// собственный высокорейтинговый вопрос пользователя может вытеснить
// чужой вопрос с меньшим счётом из итоговой выборки.
// ══════════════════════════════════════════════════════════════════════════════

// filterAndSort прогоняет кандидатов через общий конвейер
// и возвращает результат по возрастанию счёта.
func filterAndSort(candidates []*qa.Question, requester *qa.User, limit int) []*qa.Question {
	if len(candidates) == 0 {
		return []*qa.Question{}
	}

	sorted := make([]*qa.Question, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].PositiveVotes()) < len(sorted[j].PositiveVotes())
	})

	take := limit
	if take > len(sorted) {
		take = len(sorted)
	}
	top := sorted[len(sorted)-take:]

	out := make([]*qa.Question, 0, len(top))
	for _, q := range top {
		if q.Author() == requester {
			continue
		}
		out = append(out, q)
	}
	return out
}

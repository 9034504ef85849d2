package qa

// ══════════════════════════════════════════════════════════════════════════════
// CAPABILITY CONTRACTS
// Контракты способностей реализуются композицией: сущность владеет
// VoteLedger / DescriptionHolder и делегирует им. Никакой иерархии классов.
// ══════════════════════════════════════════════════════════════════════════════

// Votable - контракт сущности, способной принимать голоса.
type Votable interface {
	// ID возвращает идентификатор сущности.
	ID() string

	// AddVote добавляет голос. Возвращает ErrDuplicateVote,
	// если пользователь уже голосовал за эту сущность.
	AddVote(v *Vote) error

	// Votes возвращает все голоса в порядке добавления.
	Votes() []*Vote

	// PositiveVotes возвращает положительные голоса.
	// Выборка производная: отражает смену полярности на месте.
	PositiveVotes() []*Vote

	// NegativeVotes возвращает отрицательные голоса.
	NegativeVotes() []*Vote
}

// Describable - контракт сущности с изменяемым текстовым описанием.
type Describable interface {
	Description() string
	SetDescription(text string)
}

// Обе голосуемые сущности удовлетворяют контрактам.
var (
	_ Votable     = (*Question)(nil)
	_ Votable     = (*Answer)(nil)
	_ Describable = (*Question)(nil)
	_ Describable = (*Topic)(nil)
)

// DescriptionHolder инкапсулирует описание сущности.
type DescriptionHolder struct {
	text string
}

// NewDescriptionHolder создаёт держатель описания.
func NewDescriptionHolder(text string) *DescriptionHolder {
	return &DescriptionHolder{text: text}
}

// Description возвращает текущее описание.
func (d *DescriptionHolder) Description() string {
	return d.text
}

// SetDescription заменяет описание.
func (d *DescriptionHolder) SetDescription(text string) {
	d.text = text
}

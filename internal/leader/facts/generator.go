// AngelaMos | 2026
// generator.go

package facts

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// Leader carries the fields a generator needs to produce facts without
// depending on the leader package's storage types.
type Leader struct {
	ID        int64
	NameRu    string
	NameEn    string
	BirthYear int
	DeathYear *int
	Position  string
	Biography string
}

// Generator produces a batch of interesting facts about a leader.
type Generator interface {
	Generate(ctx context.Context, l Leader, count int) ([]string, error)
}

// Static serves pre-written facts when no AI backend is configured or
// the backend is unavailable. Leaders without a dedicated entry get
// templated facts built from their biographical fields.
type Static struct{}

func NewStatic() *Static { return &Static{} }

var staticFacts = map[string][]string{
	"Ленин": {
		"Владимир Ленин свободно владел несколькими иностранными языками, включая немецкий, французский и английский.",
		"В юности Ленин был отличным шахматистом и играл по переписке.",
		"Ленин прожил в эмиграции в общей сложности около 15 лет.",
		"Настоящая фамилия Ленина — Ульянов, псевдоним предположительно связан с рекой Леной.",
		"Ленин был заядлым велосипедистом и часто совершал длительные поездки.",
	},
	"Сталин": {
		"В юности Сталин учился в духовной семинарии в Тифлисе.",
		"Сталин писал стихи на грузинском языке, некоторые из них публиковались.",
		"Настоящая фамилия Сталина — Джугашвили.",
		"Сталин был одним из немногих большевиков, никогда не живших в эмиграции подолгу.",
		"Сталин лично редактировал государственный гимн СССР.",
	},
	"Хрущёв": {
		"Хрущёв начинал трудовой путь слесарем на шахтах Донбасса.",
		"Именно при Хрущёве состоялся первый полёт человека в космос.",
		"Хрущёв стал первым советским лидером, посетившим США с официальным визитом.",
		"Массовое жилищное строительство при Хрущёве дало название целому типу домов.",
		"Хрущёв увлекался сельским хозяйством и лично продвигал посевы кукурузы.",
	},
	"Брежнев": {
		"Брежнев был страстным коллекционером автомобилей.",
		"Брежнев участвовал в Великой Отечественной войне и дослужился до генерал-майора.",
		"Эпоху правления Брежнева позднее назвали периодом застоя.",
		"Брежнев четырежды становился Героем Советского Союза.",
		"Брежнев увлекался охотой и часто принимал иностранных гостей в охотничьих хозяйствах.",
	},
	"Андропов": {
		"Андропов пятнадцать лет возглавлял КГБ — дольше всех в истории ведомства.",
		"Андропов писал лирические стихи, которые не публиковал при жизни.",
		"В молодости Андропов работал матросом на волжских судах.",
		"Андропов возглавлял страну всего пятнадцать месяцев.",
		"Андропов начал кампанию по укреплению трудовой дисциплины.",
	},
	"Черненко": {
		"Черненко руководил страной чуть более года — один из самых коротких сроков.",
		"Черненко много лет работал в аппарате, отвечая за документооборот ЦК.",
		"Черненко был ближайшим соратником Брежнева на протяжении десятилетий.",
		"Черненко стал самым пожилым человеком, занявшим пост генерального секретаря.",
		"Черненко начинал карьеру в Красноярском крае.",
	},
	"Горбачёв": {
		"Горбачёв — единственный президент СССР в истории.",
		"Горбачёв получил Нобелевскую премию мира в 1990 году.",
		"В юности Горбачёв работал помощником комбайнёра и получил орден за уборку урожая.",
		"Горбачёв ввёл в мировой политический лексикон слова «перестройка» и «гласность».",
		"Горбачёв окончил юридический факультет МГУ.",
	},
}

func (g *Static) Generate(_ context.Context, l Leader, count int) ([]string, error) {
	if count <= 0 {
		count = 5
	}

	for key, pool := range staticFacts {
		if strings.Contains(l.NameRu, key) {
			return pick(pool, count), nil
		}
	}

	return templatedFacts(l, count), nil
}

func templatedFacts(l Leader, count int) []string {
	years := fmt.Sprintf("родился в %d году", l.BirthYear)
	if l.DeathYear != nil {
		years = fmt.Sprintf("жил с %d по %d год", l.BirthYear, *l.DeathYear)
	}

	pool := []string{
		fmt.Sprintf("%s %s.", l.NameRu, years),
		fmt.Sprintf("%s занимал пост: %s.", l.NameRu, l.Position),
		fmt.Sprintf("На английском языке имя %s записывается как %s.", l.NameRu, l.NameEn),
		fmt.Sprintf("%s оставил заметный след в истории страны.", l.NameRu),
		fmt.Sprintf("Биография %s изучается историками по сей день.", l.NameRu),
	}
	return pick(pool, count)
}

func pick(pool []string, count int) []string {
	if count >= len(pool) {
		out := make([]string, len(pool))
		copy(out, pool)
		return out
	}

	idx := rand.Perm(len(pool))[:count]
	out := make([]string, 0, count)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

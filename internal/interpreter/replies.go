package interpreter

import (
	"math/rand/v2"
	"strings"
)

// Picker chooses one of n equivalent templates.
type Picker func(n int) int

func randomPick(n int) int {
	return rand.IntN(n)
}

func (it *Interpreter) pick(options []string) string {
	return options[it.picker(len(options))]
}

const actionHints = "[Қабылдау] [Бас тарту] [Өзгерту]"

const (
	replyInternalError = "Кешіріңіз, менде техникалық ақау пайда болды. Бірнеше секундтан кейін қайталап көріңіз немесе нақты сұрақ қойыңыз. Егер қате қайталанса, әкімшіге хабарласыңыз."

	replyChatCleared   = "Чат тазаланды!"
	replyHistoryEmpty  = "Тарих бос."
	replyNoticeFormat  = "Қате! Формат: Хабарлама \"Мәтін\""
	replyNoticeUpdated = "Хабарлама жаңартылды!\n\n📢 "

	replyUndoAdd     = "Соңғы қосылған сабақ өшірілді. Көмек керек болса, 'Көмек' деп жазыңыз."
	replyUndoOther   = "Соңғы әрекет болдырылды. Тағы не істей аламын?"
	replyUndoNothing = "Болдырылатын әрекет жоқ. Басқа сұрағыңыз бар ма?"

	replyEditNoDraft    = "Өзгертуге ұсыныс жоқ. Алдымен сабақ құрыңыз немесе сұраныс жіберіңіз."
	replyEditUsage      = "Нені өзгерткіңіз келеді? Мысалы: 'Өзгерту күн сәрсенбі' немесе 'Өзгерту уақыт 12:00-14:00'"
	replyEditBadField   = "Белгісіз өріс. Өзгертуге болады: күн, уақыт, аудитория, оқытушы, пән, топ."
	replyEditBadTime    = "Уақыт форматы қате. Мысалы: 'Өзгерту уақыт 12:00-14:00'"
	replyEditUpdated    = "Ұсыныс жаңартылды:\n"
	replyAcceptNoDraft  = "Қосатын ұсыныс жоқ. Алдымен команданы жазыңыз."
	replyAskFallback    = "Толығырақ ақпарат беріңізші. Мысалы: ИС-302, Математика, Иванов, 6 сағат"
	replyHoursTooMany   = "Аптасына ең көбі %d сағат жоспарлауға болады."
	replyStructuredFail = "Қате!\n"

	replyValidityHeader   = "Кестеде қателер табылды:\n"
	replyDuplicatesHeader = "Табылған қайталанатын жазбалар:\n"
	replyConflictsHeader  = "Табылған қақтығыстар:\n"
)

var (
	greetingReplies = []string{
		"Сәлем! Мен кесте-ботпын. Сабақ кестесіне көмектесемін!",
		"Сәлеметсіз бе! Кесте бойынша сұрағыңыз бар ма?",
		"Сәлем! Сабақ қосу үшін топ, пән, оқытушы және сағатты жазыңыз.",
	}
	historyHeaders = []string{
		"Соңғы командалар:",
		"Міне, соңғы әрекеттеріңіз:",
		"Тарихыңыздан үзінді:",
	}
	faqHeaders = []string{
		"Жиі қойылатын сұрақтар:",
		"Көмек керек пе? Міне, бірнеше мысал:",
		"Төменде жиі сұралатын сұрақтар:",
	}
	purgeConfirmPrompts = []string{
		"Барлық жарамсыз жазбаларды өшіргіңіз келе ме? Растау үшін 'иә' деп жазыңыз.",
		"Жарамсыз жазбаларды өшіруді растайсыз ба? 'иә' деп жауап беріңіз.",
		"Бұл әрекет барлық жарамсыз жазбаларды өшіреді. Растау үшін 'иә' деп жазыңыз.",
	}
	// Each takes the removed count.
	purgeDoneReplies = []string{
		"Жарамсыз жазбалар өшірілді: %d",
		"Барлық жарамсыз жазбалар сәтті өшірілді! (%d)",
		"Тазалау аяқталды. Өшірілген жазбалар саны: %d",
	}
	helpHeaders = []string{
		"Қол жетімді командалар:",
		"Мен келесі командаларды түсінемін:",
		"Міне, қолжетімді функциялар:",
	}
	noDuplicatesReplies = []string{
		"Қайталанатын жазбалар табылмады!",
		"Дубликаттар жоқ!",
		"Барлығы жақсы, қайталанатын сабақтар жоқ.",
	}
	noConflictsReplies = []string{
		"Қақтығыстар табылмады!",
		"Барлығы жақсы, қақтығыстар жоқ.",
		"Кестеде қақтығыстар анықталмады.",
	}
	allValidReplies = []string{
		"Барлық кесте жазбалары жарамды!",
		"Кестеде қателер жоқ, бәрі дұрыс.",
		"Кесте толықтай дұрыс!",
	}
	acceptReplies = []string{
		"Сабақ кестеге қосылды! Жаңа команданы жазыңыз.",
		"Сабақ сәтті қосылды! Тағы не көмектесе аламын?",
		"Сабақ енгізілді. Кестені көру үшін 'Кестені тексеру' деп жазыңыз.",
	}
	rejectReplies = []string{
		"Ұсыныс жойылды. Жаңа команданы жазыңыз.",
		"Сабақ қосу ұсынысы жойылды.",
		"Ұсыныс өшірілді. Тағы не көмектесе аламын?",
	}
	badFormatReplies = []string{
		"Формат қате! Мысалы: ИС-302, Ағылшын тілі, Искакова Нургүл, 6 сағат",
		"Түсініксіз сұраныс. Мысалы: ИС-302, Математика, Иванов, 6 сағат",
		"Қате формат. Мысал: ИС-302, Математика, Иванов, 6 сағат",
	}
)

var faqBody = strings.Join([]string{
	"- Сабақты қалай қосамын?",
	"  Жай ғана жазыңыз: Топ, Пән, Оқытушы, N сағат",
	"- Қателерді қалай тексеремін?",
	"  Команда: Кестені тексеру",
	"- Жарамсыз жазбаларды қалай өшіремін?",
	"  Команда: Жарамсыз жазбаларды өшіру",
	"- Кестені қалай экспорттаймын?",
	"  Экспорт батырмасын немесе /export schedule командасын қолданыңыз (жақында іске асады)",
}, "\n")

var helpBody = strings.Join([]string{
	"- Кестені тексеру — жарамсыз жазбаларды табу",
	"- Жарамсыз жазбаларды өшіру — барлық жарамсыз жазбаларды өшіру",
	"- Дубликаттарды тексеру — қайталанатын сабақтарды табу",
	"- Қақтығыстарды тексеру — уақыт бойынша қақтығыстарды табу",
	"- Хабарлама \"Мәтін\" — басты беттегі хабарламаны орнатады. Мысалы: Хабарлама \"Ертең сабақ болмайды!\"",
	"- Көмек — командалар тізімі",
}, "\n")

func faqReply(header string) string {
	return "\n" + header + "\n\n" + faqBody + "\n"
}

func helpReply(header string) string {
	return header + "\n\n" + helpBody
}

package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"сәлеметсіз бе", KindGreeting},
		{"HI", KindGreeting},
		{`Хабарлама "Ертең сабақ болмайды!"`, KindNotice},
		{"Хабарлама", KindNoticeMalformed},
		{"очистить чат", KindClearChat},
		{"/clear", KindClearChat},
		{"/history", KindHistory},
		{"Тарих", KindHistory},
		{"/faq", KindFAQ},
		{"повторить", KindRepeat},
		{"Қайталау", KindRepeat},
		{"да", KindConfirm},
		{"Иә", KindConfirm},
		{"подтвердить", KindConfirm},
		{"/delbad", KindPurgeRequest},
		{"/undo", KindUndo},
		{"өзгерту күн жұма", KindEdit},
		{"/edit", KindEdit},
		{"/help", KindHelp},
		{"помощь", KindHelp},
		{"/dups", KindDuplicates},
		{"/conflicts", KindConflicts},
		{"/check", KindValidity},
		{"Кестені тексеру", KindValidity},
		{"принять", KindAccept},
		{"/accept", KindAccept},
		{"отклонить", KindReject},
		{"бас тарту", KindReject},
		{"ИС-302, Математика, Иванов, 6 сағат", KindStructured},
		{"ИС-302, Ағылшын тілі, Искакова Нургүл, 6 САҒАТ", KindStructured},
		{"ИС-302 Математика Иванов 6 сағат", KindFreeText},
		{"", KindFreeText},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in).Kind)
		})
	}
}

func TestClassify_KeepsOriginalCase(t *testing.T) {
	cmd := Classify(`  Хабарлама "Ертең САБАҚ жоқ"  `)
	assert.Equal(t, KindNotice, cmd.Kind)
	assert.Equal(t, "Ертең САБАҚ жоқ", cmd.Notice)
	assert.Equal(t, `Хабарлама "Ертең САБАҚ жоқ"`, cmd.Raw)
}

func TestClassify_StructuredCaptures(t *testing.T) {
	cmd := Classify("ИС-302,  Ағылшын тілі ,Искакова Н.,8 сағат")
	assert.Equal(t, KindStructured, cmd.Kind)
	assert.Equal(t, StructuredRequest{
		Group:   "ИС-302",
		Subject: "Ағылшын тілі",
		Teacher: "Искакова Н.",
		Hours:   8,
	}, cmd.Structured)
}

func TestClassify_EditParts(t *testing.T) {
	cmd := Classify("Өзгерту Оқытушы Искакова Нургүл")
	assert.Equal(t, EditRequest{Field: "оқытушы", Value: "Искакова Нургүл"}, cmd.Edit)

	assert.Equal(t, EditRequest{}, Classify("өзгерту күн").Edit)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "purge_request", KindPurgeRequest.String())
	assert.Equal(t, "free_text", KindFreeText.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

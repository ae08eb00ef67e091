package narration

import (
	"context"
	"strings"

	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

const (
	Female = "female"
	Male   = "male"
)

var (
	femaleVoices = []string{"Samantha", "Microsoft Zira", "Tessa", "Emma", "Google UK English Female"}
	maleVoices   = []string{"Daniel", "Microsoft David", "Arthur", "James", "Google UK English Male"}
)

// ProfileFor 学科对应的朗读音色, 科学课为女声, 其余为男声
func ProfileFor(track string) model.VoiceProfile {
	if strings.EqualFold(strings.TrimSpace(track), consts.ScienceTrack) {
		return model.VoiceProfile{
			Family: Female,
			Voices: append([]string(nil), femaleVoices...),
			Rate:   0.9,
			Pitch:  1.1,
		}
	}
	return model.VoiceProfile{
		Family: Male,
		Voices: append([]string(nil), maleVoices...),
		Rate:   0.9,
		Pitch:  0.9,
	}
}

var markdown = strings.NewReplacer("#", "", "*", "", "_", "", "~", "", "`", "")

// StripMarkdown 去掉不需要读出来的标记符号
func StripMarkdown(text string) string {
	return strings.TrimSpace(markdown.Replace(text))
}

var _ model.NarrationSink = Nop{}

// Nop 不合成语音, 只汇报开始与结束
type Nop struct{}

func (Nop) Speak(ctx context.Context, text string, profile model.VoiceProfile, cb model.Callbacks) {
	if cb.OnStart != nil {
		cb.OnStart()
	}
	if cb.OnEnd != nil {
		cb.OnEnd()
	}
}

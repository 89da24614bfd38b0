package palette

import "cmdboard/internal/domain"

// Effect is the outcome of selecting an item, applied separately from resolving it
type Effect interface {
	effect()
}

// EffectNone does nothing
type EffectNone struct{}

// EffectOpenURL opens URL in a new browsing context named Target, then closes the palette
type EffectOpenURL struct {
	URL    string
	Target string
}

// EffectPush navigates to a sub-page and keeps the palette open
type EffectPush struct {
	Page domain.Page
}

func (EffectNone) effect()    {}
func (EffectOpenURL) effect() {}
func (EffectPush) effect()    {}

// Resolve maps an item to its effect. Items with a URL open it; commands without one push their page.
func Resolve(item domain.Item) Effect {
	if item == nil {
		return EffectNone{}
	}
	if u := item.URL(); u != "" {
		return EffectOpenURL{URL: u, Target: item.Name()}
	}
	if cmd, ok := item.(domain.Command); ok && cmd.Target != domain.PageRoot {
		return EffectPush{Page: cmd.Target}
	}
	return EffectNone{}
}

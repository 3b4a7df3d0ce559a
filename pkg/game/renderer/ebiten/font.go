package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts decodes the embedded Go fonts into text face sources.
func (e *EbitenRenderer) loadFonts() error {
	ui, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}

	e.uiFontSource = ui
	e.boldFontSource = bold
	e.monoFontSource = mono
	return nil
}

// getUIFontFace returns a cached face for regular UI text.
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{Source: e.uiFontSource, Size: baseFontSize}
	}
	return e.cachedUIFace
}

// getBoldFontFace returns a cached bold face for emphasized UI text.
func (e *EbitenRenderer) getBoldFontFace() *text.GoTextFace {
	if e.cachedBoldFace == nil {
		e.cachedBoldFace = &text.GoTextFace{Source: e.boldFontSource, Size: baseFontSize}
	}
	return e.cachedBoldFace
}

// getTitleFontFace returns a cached bold face for menu titles.
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil {
		e.cachedTitleFace = &text.GoTextFace{Source: e.boldFontSource, Size: titleFontSize}
	}
	return e.cachedTitleFace
}

// getMonoFontFace returns a cached monospace face for the HUD numbers.
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: baseFontSize}
	}
	return e.cachedMonoFace
}

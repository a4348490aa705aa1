package main

import (
	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type bar progressbar.ProgressBar

func newBar(n int, description string) *bar {
	return (*bar)(progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}

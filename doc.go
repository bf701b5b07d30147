// Package touchkit is the touch interaction layer of the Stack & Justify
// font specimen tool, built for [Ebitengine] hosts.
//
// The centerpiece is [Recognizer], which turns pointer samples over a list of
// specimen lines into swipe actions: swipe left past the threshold to delete
// a line, swipe right to copy its text. Each continuous touch fires at most
// one action, and a mostly-vertical motion is treated as scrolling.
//
// # Quick start
//
//	lines := touchkit.NewLineList(touchkit.Vec2{X: 0, Y: 80}, 480, 48)
//	lines.Clipboard = touchkit.SystemClipboard{}
//	lines.Add("Hamburgefonstiv", "", 32)
//
//	rec := touchkit.NewRecognizer(touchkit.DefaultConfig())
//	toast := touchkit.NewToast()
//	rec.SetFeedback(toast)
//
//	input := touchkit.NewTouchInput(rec, lines)
//
// Then, from ebiten.Game.Update:
//
//	input.Update()
//	rec.Update(dt)
//	toast.Update(dt)
//
// Hosts that are not Ebitengine games call [Recognizer.TouchStart],
// [Recognizer.TouchMove] and [Recognizer.TouchEnd] directly.
//
// # Mobile layout state
//
// [Classify] and [ViewportWatcher] bucket the window into desktop, mobile and
// small-phone layouts. [Accordion] and [Menu] hold the collapsible control
// panel state, [LanguageDialog] edits the word-list language selection, and
// [FontLibrary] takes in font files picked by the user.
//
// ECS integration is available through the Donburi adapter in touchkit/ecs.
//
// [Ebitengine]: https://ebitengine.org
package touchkit

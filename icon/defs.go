package icon

// Icon identifies one UI symbol in the global registry.
type Icon int

const (
	Progress Icon = iota
	Success
	Fail
	Question
	Mark
	Book
	Chapter
	Play
	Pause
	Volume
	Search
	History
	Source
	Link
)

// icons is the global registry mapping each Icon to its per-variant glyphs.
var icons = map[Icon]*iconDef{
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(･ω･)", squares: "▱▱▱"},
	Success:  {emoji: "✅", nerd: "", plain: "OK", kaomoji: "(•̀ᴗ•́)و", squares: "▣"},
	Fail:     {emoji: "❌", nerd: "", plain: "X", kaomoji: "(╥﹏╥)", squares: "▨"},
	Question: {emoji: "❓", nerd: "", plain: "?", kaomoji: "(･_･?)", squares: "▤"},
	Mark:     {emoji: "🔖", nerd: "", plain: "*", kaomoji: "(o･ω･o)", squares: "▪"},
	Book:     {emoji: "📖", nerd: "", plain: "#", kaomoji: "φ(．．)", squares: "▥"},
	Chapter:  {emoji: "🎧", nerd: "", plain: "-", kaomoji: "♪(´ε｀)", squares: "▫"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "ᕕ(ᐛ)ᕗ", squares: "▶"},
	Pause:    {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(-_-)zzz", squares: "▮▮"},
	Volume:   {emoji: "🔊", nerd: "", plain: "%", kaomoji: "(((o(ﾟ▽ﾟ)o)))", squares: "◪"},
	Search:   {emoji: "🔍", nerd: "", plain: "/", kaomoji: "(☉_☉)", squares: "◩"},
	History:  {emoji: "🕘", nerd: "", plain: "@", kaomoji: "(￣ー￣)", squares: "◉"},
	Source:   {emoji: "🌐", nerd: "", plain: "+", kaomoji: "ヽ(・∀・)ﾉ", squares: "◈"},
	Link:     {emoji: "🔗", nerd: "", plain: "~", kaomoji: "(つ・▽・)つ", squares: "◫"},
}

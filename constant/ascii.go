package constant

// AsciiArtLogo is the application's banner shown on the root help screen.
const AsciiArtLogo = `
  ██▀███ ▓██   ██▓ ███▄ ▄███▓  █████▒██▓     █    ██ ▒██   ██▒
 ▓██ ▒ ██▒▒██  ██▒▓██▒▀█▀ ██▒▓██   ▒▓██▒     ██  ▓██▒▒▒ █ █ ▒░
 ▓██ ░▄█ ▒ ▒██ ██░▓██    ▓██░▒████ ░▒██░    ▓██  ▒██░░░  █   ░
 ▒██▀▀█▄   ░ ▐██▓░▒██    ▒██ ░▓█▒  ░▒██░    ▓▓█  ░██░ ░ █ █ ▒
 ░██▓ ▒██▒ ░ ██▒▓░▒██▒   ░██▒░▒█░   ░██████▒▒▒█████▓ ▒██▒ ▒██▒
 ░ ▒▓ ░▒▓░  ██▒▒▒ ░ ▒░   ░  ░ ▒ ░   ░ ▒░▓  ░░▒▓▒ ▒ ▒ ▒▒ ░ ░▓ ░`

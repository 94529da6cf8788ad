package constant

// AsciiArtLogo is the application's banner shown in the root command help.
const AsciiArtLogo = `
   ____ _____  (_)___  ___  ___  / /__
  / __ ` + "`" + `/ __ \/ / __ \/ _ \/ _ \/ //_/
 / /_/ / / / / / /_/ /  __/  __/ ,<
 \__,_/_/ /_/_/ .___/\___/\___/_/|_|
             /_/`

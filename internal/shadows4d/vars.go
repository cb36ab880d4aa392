package shadows4d

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save a PNG sequence instead of an animated GIF
	Watch = false // set to true to follow light changes in the config file instead of rendering
	Dump  = false // set to true to print shadow points to the terminal instead of rendering
)

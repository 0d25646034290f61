package polymer

var Linked = linked

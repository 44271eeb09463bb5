// Package lua runs user selection hooks written in Lua.
//
// Scripts execute in a sandboxed gopher-lua state with only the base,
// table, string and math libraries. file loading, require and the io, os
// and debug libraries are unavailable.
//
// A hook script defines a global on_select function:
//
//	function on_select(geom, final, mode, count)
//	  if final and count == 0 then
//	    return "nothing selected"
//	  end
//	end
//
// geom is a table with kind, sx0, sx1, sy0 and sy1 fields. A string
// returned from on_select is surfaced to the caller as a status message.
// Scripts may call log(msg) to write to the application log.
package lua

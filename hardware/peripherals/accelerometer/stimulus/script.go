// This file is part of accelcircle.
//
// accelcircle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// accelcircle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with accelcircle.  If not, see <https://www.gnu.org/licenses/>.

package stimulus

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/environment"
	"github.com/accelcircle/accelcircle/logger"
)

const scriptLogTag = "script"

// the name of the Lua function called every frame
const scriptFunction = "reading"

// Script calls a function in a Lua script to produce readings. The function
// is called with the frame number and must return either a number, which is
// used as the packed word, or a table with the fields t, x, y and z holding
// signed lane values. Missing fields are zero.
//
// The script can use the global function pack(t, x, y, z) to build a word
// and log(message) to write to the log.
type Script struct {
	filename string
	state    *lua.LState
}

// NewScript loads and runs the script. The script must define the reading
// function.
func NewScript(env *environment.Environment, filename string) (*Script, error) {
	sc := &Script{filename: filename}
	if err := sc.init(env, func(L *lua.LState) error { return L.DoFile(filename) }); err != nil {
		return nil, err
	}
	return sc, nil
}

// NewScriptFromString is like NewScript but the script is given as a
// string.
func NewScriptFromString(env *environment.Environment, src string) (*Script, error) {
	sc := &Script{filename: "<string>"}
	if err := sc.init(env, func(L *lua.LState) error { return L.DoString(src) }); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Script) init(env *environment.Environment, load func(*lua.LState) error) error {
	sc.state = lua.NewState()

	sc.state.SetGlobal("pack", sc.state.NewFunction(func(L *lua.LState) int {
		w := Pack(clamp(L.OptInt(1, 0)), clamp(L.OptInt(2, 0)), clamp(L.OptInt(3, 0)), clamp(L.OptInt(4, 0)))
		L.Push(lua.LNumber(w))
		return 1
	}))

	sc.state.SetGlobal("log", sc.state.NewFunction(func(L *lua.LState) int {
		logger.Log(env, scriptLogTag, L.CheckString(1))
		return 0
	}))

	if err := load(sc.state); err != nil {
		sc.state.Close()
		return curated.Errorf(BadStimulus, "script", err)
	}

	if sc.state.GetGlobal(scriptFunction).Type() != lua.LTFunction {
		sc.state.Close()
		return curated.Errorf(BadStimulus, "script", fmt.Sprintf("no %s() function", scriptFunction))
	}

	return nil
}

func (sc *Script) String() string {
	return fmt.Sprintf("script:%s", sc.filename)
}

// Reading implements the accelerometer.Stimulus interface.
func (sc *Script) Reading(frame int) (uint32, error) {
	err := sc.state.CallByParam(lua.P{
		Fn:      sc.state.GetGlobal(scriptFunction),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(frame))
	if err != nil {
		return 0, fmt.Errorf("script: %w", err)
	}

	ret := sc.state.Get(-1)
	sc.state.Pop(1)

	switch v := ret.(type) {
	case lua.LNumber:
		return uint32(int64(v)), nil
	case *lua.LTable:
		lane := func(name string) int8 {
			if n, ok := v.RawGetString(name).(lua.LNumber); ok {
				return clamp(int(n))
			}
			return 0
		}
		return Pack(lane("t"), lane("x"), lane("y"), lane("z")), nil
	}

	return 0, fmt.Errorf("script: %s() returned %s", scriptFunction, ret.Type())
}

// Close the Lua state. The Script should not be used after Close() has been
// called.
func (sc *Script) Close() {
	sc.state.Close()
}
